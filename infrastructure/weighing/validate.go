package weighing

import (
	"errors"
	"strings"

	"pesagem/models"
)

var (
	ErrMissingName        = errors.New("client name is required")
	ErrMissingProductType = errors.New("product type is required")
	ErrNoWeights          = errors.New("at least one weight is required")
	ErrInvalidWeight      = errors.New("invalid weight")
	ErrWeightIndex        = errors.New("weight index out of range")
)

var messages = map[error]string{
	ErrMissingName:        "Por favor, preencha o nome do cliente.",
	ErrMissingProductType: "Por favor, selecione o tipo de produto.",
	ErrNoWeights:          "Por favor, adicione ao menos um peso.",
	ErrInvalidWeight:      "Peso inválido. Use apenas números, com vírgula ou ponto como separador decimal.",
	ErrWeightIndex:        "Peso não encontrado.",
}

// Message returns the banner text shown to the operator for err.
func Message(err error) string {
	for target, msg := range messages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return "Não foi possível concluir a operação."
}

// Validate checks a record is complete enough to export. Checks run in a
// fixed order and only the first failure is returned.
func Validate(record models.ClientRecord) error {
	if strings.TrimSpace(record.Name) == "" {
		return ErrMissingName
	}
	if !record.Product.IsSet() {
		return ErrMissingProductType
	}
	if len(record.Weights) == 0 {
		return ErrNoWeights
	}
	return nil
}
