package ctxkeys

import (
	"context"

	"github.com/sanketsmane/portfolio-api/internal/model"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const AdminKey contextKey = "admin"

func Admin(ctx context.Context) *model.Admin {
	admin, _ := ctx.Value(AdminKey).(*model.Admin)
	return admin
}

func WithAdmin(ctx context.Context, admin *model.Admin) context.Context {
	return context.WithValue(ctx, AdminKey, admin)
}
