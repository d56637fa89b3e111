package constvars

const (
	RegexEmail              = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexNumeric            = `^\d+$`
	RegexDateYYYYMMDD       = `^\d{4}-\d{2}-\d{2}$`
	RegexPhoneNumberGeneral = `^\+?[0-9][0-9\s-]{6,17}$`
)
