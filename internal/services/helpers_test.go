package services

import (
	"centsible/internal/auth"
	"centsible/internal/models"
	"centsible/internal/query"
)

func principalFor(u *models.User) auth.Principal {
	return auth.Principal{ID: u.ID, Email: u.Email, Role: u.Role}
}

func noOptions() *query.Options {
	return &query.Options{Offset: -1, Limit: -1}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
