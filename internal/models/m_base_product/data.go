package m_base_product

// Data is the database model for one base_products row. All amounts are in
// integer cents.
type Data struct {
	CourseID  string `spanner:"course_id"`
	BasePrice int64  `spanner:"base_price"`
	CartFee   int64  `spanner:"cart_fee"`
	CaddieFee int64  `spanner:"caddie_fee"`
}
