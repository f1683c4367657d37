package m_base_product

// Field name constants for the base_products table.
const (
	TableName = "base_products"

	CourseID  = "course_id"
	BasePrice = "base_price"
	CartFee   = "cart_fee"
	CaddieFee = "caddie_fee"
)

// Columns lists every column for full-row reads.
var Columns = []string{
	CourseID, BasePrice, CartFee, CaddieFee,
}
