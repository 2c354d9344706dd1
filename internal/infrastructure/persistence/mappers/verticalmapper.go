package mappers

import (
	"fmt"

	"github.com/gazette-press/gazette/internal/domain/vertical"
	"github.com/gazette-press/gazette/internal/infrastructure/persistence/models"
	"github.com/gazette-press/gazette/internal/shared/mapper"
)

// ToVerticalCodes converts vertical catalog rows into domain codes.
func ToVerticalCodes(modelList []models.VerticalModel) ([]vertical.Code, error) {
	return mapper.MapSliceWithError(modelList, func(m models.VerticalModel) (vertical.Code, error) {
		code, err := vertical.ParseCode(m.Code)
		if err != nil {
			return "", fmt.Errorf("failed to parse vertical row %d: %w", m.ID, err)
		}
		return code, nil
	})
}
