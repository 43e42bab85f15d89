package ports

import (
	"context"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

// TokenIssuer talks to the upstream token endpoints. It is the only upstream
// surface reached without a bearer token attached.
type TokenIssuer interface {
	// IssueTokens exchanges username+password for a credential pair.
	// Upstream 401 maps to domain.ErrInvalidCredentials.
	IssueTokens(ctx context.Context, username, password string) (domain.CredentialPair, error)
	// RefreshAccess exchanges a refresh token for a new access token.
	RefreshAccess(ctx context.Context, refreshToken string) (string, error)
}

// CustomerAPI fronts /clientes/.
type CustomerAPI interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, id int64, c domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// EmployeeAPI fronts /empleados/.
type EmployeeAPI interface {
	List(ctx context.Context, activeOnly *bool) ([]domain.Employee, error)
	Me(ctx context.Context) (*domain.Employee, error)
	Get(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, e domain.NewEmployee) (*domain.Employee, error)
	Update(ctx context.Context, id int64, e domain.NewEmployee) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

// ProductAPI fronts /productos/.
type ProductAPI interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int64, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

// CatalogAPI fronts the /categorias/ and /colecciones/ lookup lists.
type CatalogAPI interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Collections(ctx context.Context) ([]domain.Collection, error)
}

// SaleAPI fronts /ventas/.
type SaleAPI interface {
	List(ctx context.Context) ([]domain.Sale, error)
	Create(ctx context.Context, s domain.NewSale) (*domain.Sale, error)
}

// MovementAPI fronts /movimientos-inventario/.
type MovementAPI interface {
	List(ctx context.Context) ([]domain.Movement, error)
	Create(ctx context.Context, m domain.Movement) (*domain.Movement, error)
}

// ReportAPI fronts /ventas/reportes/resumen/.
type ReportAPI interface {
	SalesSummary(ctx context.Context, period string) (*domain.SalesReport, error)
}
