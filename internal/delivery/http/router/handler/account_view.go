package handler

import (
	"time"

	"userapi/internal/domain/entity"
)

// accountView is the public shape of an account. Credentials never leave the service.
type accountView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	LastName  string    `json:"lastname"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toAccountView(account *entity.Account) *accountView {
	return &accountView{
		ID:        account.ID.String(),
		Email:     account.Email,
		Name:      account.Name,
		LastName:  account.LastName,
		Avatar:    account.Avatar,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

func toAccountViews(accounts []*entity.Account) []*accountView {
	views := make([]*accountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, toAccountView(account))
	}

	return views
}
