package usecases

import (
	"context"
	"fmt"

	"github.com/gazette-press/gazette/internal/application/access"
	"github.com/gazette-press/gazette/internal/application/account/dto"
	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/shared/errors"
	"github.com/gazette-press/gazette/internal/shared/logger"
	"github.com/gazette-press/gazette/internal/shared/utils"
)

// ListAccountsUseCase returns a paginated account listing for admins.
type ListAccountsUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewListAccountsUseCase(accountRepo account.Repository, logger logger.Interface) *ListAccountsUseCase {
	return &ListAccountsUseCase{accountRepo: accountRepo, logger: logger}
}

// Execute lists accounts, optionally filtered by role.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, caller access.Caller, request dto.ListAccountsRequest) (*dto.AccountListResponse, error) {
	if !caller.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can list accounts")
	}

	filter := account.ListFilter{}
	if request.Role != "" {
		role, err := account.ParseRole(request.Role)
		if err != nil {
			return nil, errors.NewValidationError("invalid role filter", err.Error())
		}
		filter.Role = &role
	}

	pagination := utils.ValidatePagination(request.Page, request.PageSize)

	accounts, total, err := uc.accountRepo.List(ctx, filter, pagination.Offset(), pagination.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	items := make([]dto.AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		items = append(items, dto.ToAccountResponse(acc))
	}

	return &dto.AccountListResponse{
		Accounts: items,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
