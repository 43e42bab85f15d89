package domain

// Upstream record schemas for the inventory API. Wire names are fixed by the
// upstream (Spanish field names); the console passes them through unchanged
// so the UI sees exactly what the API produced. Monetary amounts arrive as
// decimal strings and timestamps as upstream-formatted strings; neither is
// reinterpreted on the way through.

// Category is a product category lookup entry.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
}

// Collection groups products, optionally by season.
type Collection struct {
	ID     int64  `json:"id"`
	Name   string `json:"nombre"`
	Season string `json:"temporada,omitempty"`
}

// Product is a single inventory item.
type Product struct {
	ID             int64  `json:"id"`
	Name           string `json:"nombre"`
	CategoryID     int64  `json:"categoria"`
	CategoryName   string `json:"categoria_nombre,omitempty"`
	CollectionID   *int64 `json:"coleccion"`
	CollectionName string `json:"coleccion_nombre,omitempty"`
	Sizes          string `json:"tallas"`
	Description    string `json:"descripcion,omitempty"`
	Image          string `json:"imagen,omitempty"`
	UnitPrice      string `json:"precio_unitario"`
	CurrentStock   int    `json:"stock_actual"`
	MinStock       int    `json:"stock_minimo"`
	CreatedAt      string `json:"fecha_creacion,omitempty"`
	UpdatedAt      string `json:"fecha_actualizacion,omitempty"`
	Active         bool   `json:"activo"`
	LowStock       bool   `json:"stock_bajo"`
	OutOfStock     bool   `json:"sin_stock"`
}

// ProductFilter carries the list-endpoint query parameters. Zero values mean
// "not set" and are omitted from the outgoing query string.
type ProductFilter struct {
	Name         string
	CategoryID   int64
	CollectionID int64
	PriceMin     string
	PriceMax     string
	StockMin     *int
	StockMax     *int
	Sizes        string
	Colors       string
	LowStockOnly bool
}

// Customer is a retail or wholesale client record.
type Customer struct {
	ID           int64  `json:"id"`
	Name         string `json:"nombre"`
	Type         string `json:"tipo_cliente"`
	Email        string `json:"correo,omitempty"`
	Phone        string `json:"telefono"`
	Address      string `json:"direccion,omitempty"`
	Instagram    string `json:"instagram,omitempty"`
	BusinessName string `json:"nombre_negocio,omitempty"`
	TaxID        string `json:"nit_rut,omitempty"`
	RegisteredAt string `json:"fecha_registro,omitempty"`
	Active       bool   `json:"activo"`
}

// Customer types accepted by the upstream.
const (
	CustomerRetail        = "minorista"
	CustomerWholesale     = "mayorista"
	CustomerInternational = "internacional"
)

// EmployeeUser is the nested account record inside an employee.
type EmployeeUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
}

// Employee is a staff member with an attached account.
type Employee struct {
	ID       int64        `json:"id"`
	User     EmployeeUser `json:"user"`
	Phone    string       `json:"telefono,omitempty"`
	HiredAt  string       `json:"fecha_contratacion"`
	Active   bool         `json:"activo"`
	FullName string       `json:"nombre_completo,omitempty"`
}

// NewEmployeeUser is the nested account payload for employee writes.
// Password is only sent, never read back.
type NewEmployeeUser struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
}

// NewEmployee is the write payload for /empleados/; the read shape differs
// (see Employee).
type NewEmployee struct {
	User    NewEmployeeUser `json:"user"`
	Phone   string          `json:"telefono,omitempty"`
	HiredAt string          `json:"fecha_contratacion,omitempty"`
	IsStaff *bool           `json:"is_staff,omitempty"`
	Active  *bool           `json:"activo,omitempty"`
}

// SaleLine is one product line inside a sale.
type SaleLine struct {
	ID          int64   `json:"id,omitempty"`
	SaleID      int64   `json:"venta,omitempty"`
	ProductID   int64   `json:"producto"`
	ProductName string  `json:"producto_nombre,omitempty"`
	Quantity    int     `json:"cantidad"`
	UnitPrice   float64 `json:"precio_unitario"`
	Subtotal    float64 `json:"subtotal"`
}

// Sale is a completed point-of-sale transaction.
type Sale struct {
	ID           int64      `json:"id"`
	Date         string     `json:"fecha"`
	Channel      string     `json:"canal_venta"`
	CustomerID   *int64     `json:"cliente,omitempty"`
	CustomerName string     `json:"cliente_nombre,omitempty"`
	EmployeeID   int64      `json:"empleado"`
	EmployeeName string     `json:"empleado_nombre,omitempty"`
	Subtotal     string     `json:"subtotal"`
	Discount     string     `json:"descuento"`
	Total        string     `json:"total"`
	Notes        string     `json:"notas,omitempty"`
	Lines        []SaleLine `json:"detalles"`
}

// Sales channels accepted by the upstream.
const (
	ChannelNequi       = "nequi"
	ChannelDaviplata   = "daviplata"
	ChannelBancolombia = "bancolombia"
	ChannelInPerson    = "presencial"
	ChannelCard        = "tarjeta"
)

// NewSale is the create payload for POST /ventas/.
type NewSale struct {
	Channel    string     `json:"canal_venta"`
	CustomerID *int64     `json:"cliente,omitempty"`
	EmployeeID int64      `json:"empleado"`
	Subtotal   float64    `json:"subtotal"`
	Discount   float64    `json:"descuento"`
	Total      float64    `json:"total"`
	Notes      string     `json:"notas,omitempty"`
	Lines      []SaleLine `json:"detalles"`
}

// Movement is a stock movement (restock, withdrawal, adjustment, return).
type Movement struct {
	ID           int64  `json:"id"`
	ProductID    int64  `json:"producto"`
	ProductName  string `json:"producto_nombre,omitempty"`
	Type         string `json:"tipo"`
	Quantity     int    `json:"cantidad"`
	Date         string `json:"fecha,omitempty"`
	EmployeeID   *int64 `json:"empleado,omitempty"`
	EmployeeName string `json:"empleado_nombre,omitempty"`
	Reason       string `json:"motivo,omitempty"`
}

// Movement types accepted by the upstream.
const (
	MovementIn         = "entrada"
	MovementOut        = "salida"
	MovementAdjustment = "ajuste"
	MovementReturn     = "devolucion"
)

// ReportTotals aggregates revenue over the report range.
type ReportTotals struct {
	Revenue   string `json:"ingresos"`
	Discounts string `json:"descuentos"`
}

// TopProduct is one entry of the best-sellers ranking.
type TopProduct struct {
	ProductID   int64  `json:"producto__id"`
	ProductName string `json:"producto__nombre"`
	UnitsSold   int    `json:"cantidad_vendida"`
	Revenue     string `json:"ingresos"`
}

// SeriesPoint is one month of the revenue time series.
type SeriesPoint struct {
	Month string `json:"mes"`
	Total string `json:"total"`
}

// SalesReport is the aggregated summary returned by the report endpoint.
type SalesReport struct {
	Totals      ReportTotals  `json:"totales"`
	RangeFrom   string        `json:"rango_desde"`
	RangeTo     string        `json:"rango_hasta"`
	TopProducts []TopProduct  `json:"top_productos"`
	Series      []SeriesPoint `json:"serie_temporal"`
}
