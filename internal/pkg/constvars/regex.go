package constvars

const (
	RegexNumeric           = `^\d+$`
	RegexDateYYYYMMDD      = `^\d{4}-\d{2}-\d{2}$`
	RegexDateDDMMYYYY      = `^\d{2}/\d{2}/\d{4}$`
	RegexDataURLBase64     = `^data:([a-zA-Z0-9.+/-]+);base64,`
	RegexCPFFormattedDigit = `[.\-\s]`
)
