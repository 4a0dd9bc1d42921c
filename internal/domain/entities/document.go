package entities

// Brazilian taxpayer documents (CPF/CNPJ).
//
// Clients store `documento` normalized to digits only. Validation implements
// the official checksum algorithms; masking is display-only and does not
// depend on validity.

var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 7, 8, 9, 2, 3, 4, 5, 6, 7, 8, 9}
)

// ExtractDigits removes everything that is not an ASCII digit. Only 0-9 may
// survive: the checksum and masking code index the result byte by byte.
func ExtractDigits(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, byte(r))
		}
	}
	return string(out)
}

// ValidateDocument accepts a formatted or raw document and dispatches on the
// digit count: 11 validates as CPF, 14 as CNPJ, anything else is invalid.
func ValidateDocument(documento string) bool {
	digits := ExtractDigits(documento)
	switch len(digits) {
	case 11:
		return ValidateCPF(documento)
	case 14:
		return ValidateCNPJ(documento)
	default:
		return false
	}
}

// ValidateCPF checks the two CPF verification digits.
func ValidateCPF(cpf string) bool {
	digits := ExtractDigits(cpf)
	if len(digits) != 11 {
		return false
	}
	if allSameDigits(digits) {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (10 - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		remainder = 0
	}
	if remainder != int(digits[9]-'0') {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * (11 - i)
	}
	remainder = (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		remainder = 0
	}
	return remainder == int(digits[10]-'0')
}

// ValidateCNPJ checks the two CNPJ verification digits.
func ValidateCNPJ(cnpj string) bool {
	digits := ExtractDigits(cnpj)
	if len(digits) != 14 {
		return false
	}
	if allSameDigits(digits) {
		return false
	}

	sum := 0
	for i := 0; i < 12; i++ {
		sum += int(digits[i]-'0') * cnpjWeightsFirst[i]
	}
	first := checkDigitMod11(sum)
	if first != int(digits[12]-'0') {
		return false
	}

	sum = 0
	for i := 0; i < 12; i++ {
		sum += int(digits[i]-'0') * cnpjWeightsSecond[i]
	}
	sum += first * 2
	return checkDigitMod11(sum) == int(digits[13]-'0')
}

// MaskDocumentDigits builds the partially redacted display form:
// CPF XXX.***.XXX-XX, CNPJ XX.***.***/****-XX. Non-standard lengths are
// returned untouched.
func MaskDocumentDigits(documento string) string {
	digits := ExtractDigits(documento)
	switch len(digits) {
	case 11:
		return digits[0:3] + ".***." + digits[5:8] + "-" + digits[9:]
	case 14:
		return digits[0:2] + ".***.***/****-" + digits[12:]
	default:
		return documento
	}
}

func checkDigitMod11(sum int) int {
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

func allSameDigits(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
