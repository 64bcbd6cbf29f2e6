package services

import (
	"time"

	"pharmadmin/internal/database"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

// QueryService 报表分析查询，SQL用squirrel拼装后经gorm执行。
// 结果行都是带列序的专用结构，序列化后列顺序稳定。
type QueryService struct {
	db *gorm.DB
}

func NewQueryService() *QueryService {
	return &QueryService{
		db: database.GetDB(),
	}
}

// ========== 结果行 ==========

// ClientOrderRow 客户及其订单信息
type ClientOrderRow struct {
	ClientID            uint       `json:"client_id"`
	Surname             string     `json:"surname"`
	Name                string     `json:"name"`
	Patronymic          *string    `json:"patronymic"`
	PhoneNumber         string     `json:"phone_number"`
	OrderNumber         int        `json:"order_number"`
	ExpectedDateOfIssue *time.Time `json:"expected_date_of_issue"`
}

// ClientMedicationRow 客户订单加药剂信息
type ClientMedicationRow struct {
	ClientID            uint       `json:"client_id"`
	Surname             string     `json:"surname"`
	Name                string     `json:"name"`
	Patronymic          *string    `json:"patronymic"`
	PhoneNumber         string     `json:"phone_number"`
	OrderNumber         int        `json:"order_number"`
	ExpectedDateOfIssue *time.Time `json:"expected_date_of_issue"`
	MedicationName      string     `json:"medication_name"`
	MedicationType      string     `json:"medication_type"`
}

// MedicineDetailsRow 药剂明细：工艺描述加逐条配方成分
type MedicineDetailsRow struct {
	MedicineID             uint     `json:"medicine_id"`
	MedicineName           string   `json:"medicine_name"`
	MedicineType           string   `json:"medicine_type"`
	PreparationDescription *string  `json:"preparation_description"`
	ComponentName          *string  `json:"component_name"`
	ComponentAmount        *float64 `json:"component_amount"`
	ComponentUnitOfMeasure *string  `json:"component_unit_of_measure"`
	ComponentPrice         *float64 `json:"component_price"`
	CurrentStockAmount     float64  `json:"current_stock_amount"`
}

// MedicinePriceRow 药剂价格与配方成分
type MedicinePriceRow struct {
	MedicineName            string   `json:"medicine_name"`
	MedicinePrice           float64  `json:"medicine_price"`
	ComponentName           *string  `json:"component_name"`
	RequiredComponentAmount *float64 `json:"required_component_amount"`
	ComponentUnitOfMeasure  *string  `json:"component_unit_of_measure"`
	ComponentPrice          *float64 `json:"component_price"`
}

// TopMedicationRow 订购最多的药剂
type TopMedicationRow struct {
	MedicationID   uint   `json:"medication_id"`
	MedicationName string `json:"medication_name"`
	OrderCount     int64  `json:"order_count"`
}

// StockLevelRow 库存水位
type StockLevelRow struct {
	MedicationID   uint    `json:"medication_id"`
	MedicationName string  `json:"medication_name"`
	MedicationType *string `json:"medication_type"`
	CurrentAmount  float64 `json:"current_amount"`
	CriticalNorm   float64 `json:"critical_norm"`
}

// IngredientUsageRow 原料用量统计
type IngredientUsageRow struct {
	IngredientName  string  `json:"ingredient_name"`
	UnitOfMeasure   string  `json:"unit_of_measure"`
	TotalAmountUsed float64 `json:"total_amount_used"`
}

// IngredientNeedRow 在制订单的原料需求
type IngredientNeedRow struct {
	IngredientID        uint    `json:"ingredient_id"`
	IngredientName      string  `json:"ingredient_name"`
	TotalRequiredAmount float64 `json:"total_required_amount"`
	UnitOfMeasure       string  `json:"unit_of_measure"`
}

// ProducingOrderRow 在制订单
type ProducingOrderRow struct {
	OrderID             uint       `json:"order_id"`
	PrescriptionID      uint       `json:"prescription_id"`
	ClientID            uint       `json:"client_id"`
	OrderNumber         int        `json:"order_number"`
	ExpectedDateOfIssue *time.Time `json:"expected_date_of_issue"`
	Status              string     `json:"status"`
	DateOfIssue         *time.Time `json:"date_of_issue"`
	ProductionTime      *int       `json:"production_time"`
	Cost                float64    `json:"cost"`
}

// TechnologyRow 制备工艺及适用药剂
type TechnologyRow struct {
	TechID          uint   `json:"tech_id"`
	TechDescription string `json:"tech_description"`
	MedicineName    string `json:"medicine_name"`
	MedicineType    string `json:"medicine_type"`
}

// FrequentClientRow 下单最多的客户
type FrequentClientRow struct {
	ClientID         uint    `json:"client_id"`
	ClientSurname    string  `json:"client_surname"`
	ClientName       string  `json:"client_name"`
	ClientPatronymic *string `json:"client_patronymic"`
	TotalOrders      int64   `json:"total_orders"`
}

// ========== 查询 ==========

func (s *QueryService) run(builder sq.SelectBuilder, dest interface{}) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	return s.db.Raw(query, args...).Scan(dest).Error
}

func (s *QueryService) count(builder sq.SelectBuilder) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}
	var count int64
	err = s.db.Raw(query, args...).Scan(&count).Error
	return count, err
}

// 已制好但尚未领取的订单的客户
func (s *QueryService) clientsUnclaimed() sq.SelectBuilder {
	return sq.Select(
		"c.id AS client_id", "c.surname", "c.name", "c.patronymic", "c.phone_number",
		"o.order_number", "o.expected_date_of_issue").
		From("medicine_orders o").
		Join("clients c ON c.id = o.client_id").
		Where(sq.Eq{"o.status": "ready"}).
		OrderBy("o.expected_date_of_issue")
}

// ClientsWithUnclaimedOrders 获取未领取订单的客户
func (s *QueryService) ClientsWithUnclaimedOrders() ([]ClientOrderRow, error) {
	var rows []ClientOrderRow
	err := s.run(s.clientsUnclaimed(), &rows)
	return rows, err
}

// CountClientsWithUnclaimedOrders 统计未领取订单的客户数
func (s *QueryService) CountClientsWithUnclaimedOrders() (int64, error) {
	return s.count(sq.Select("COUNT(DISTINCT o.client_id)").
		From("medicine_orders o").
		Where(sq.Eq{"o.status": "ready"}))
}

// 等待到货的订单及对应药剂信息
func (s *QueryService) clientsWaiting() sq.SelectBuilder {
	return sq.Select(
		"c.id AS client_id", "c.surname", "c.name", "c.patronymic", "c.phone_number",
		"o.order_number", "o.expected_date_of_issue",
		"m.name AS medication_name", "md.type AS medication_type").
		From("medicine_orders o").
		Join("clients c ON c.id = o.client_id").
		Join("prescriptions p ON p.id = o.prescription_id").
		Join("medications m ON m.id = p.medicine_id").
		Join("medicines md ON md.id = p.medicine_id").
		Where(sq.Eq{"o.status": "waiting for a delivery"}).
		OrderBy("o.expected_date_of_issue")
}

// ClientsWaitingForDelivery 获取等待到货的客户
func (s *QueryService) ClientsWaitingForDelivery() ([]ClientMedicationRow, error) {
	var rows []ClientMedicationRow
	err := s.run(s.clientsWaiting(), &rows)
	return rows, err
}

// CountClientsWaitingForDelivery 统计等待到货的客户数
func (s *QueryService) CountClientsWaitingForDelivery() (int64, error) {
	return s.count(sq.Select("COUNT(DISTINCT o.client_id)").
		From("medicine_orders o").
		Where(sq.Eq{"o.status": "waiting for a delivery"}))
}

// CountClientsWaitingForDeliveryByType 按药剂类型统计等待到货的客户数
func (s *QueryService) CountClientsWaitingForDeliveryByType(medType string) (int64, error) {
	return s.count(sq.Select("COUNT(DISTINCT o.client_id)").
		From("medicine_orders o").
		Join("prescriptions p ON p.id = o.prescription_id").
		Join("medicines md ON md.id = p.medicine_id").
		Where(sq.Eq{"o.status": "waiting for a delivery", "md.type": medType}))
}

// startDataWithin 按天给定的闭区间[startDate, endDate]，
// 转成对时间戳的半开区间，end+1天当天零点的行不会被算进来
func startDataWithin(startDate, endDate time.Time) sq.And {
	return sq.And{
		sq.GtOrEq{"o.start_data": startDate},
		sq.Lt{"o.start_data": endDate.AddDate(0, 0, 1)},
	}
}

// 按药剂筛选某时间段下过单的客户
func (s *QueryService) clientsByMedication(startDate, endDate time.Time) sq.SelectBuilder {
	return sq.Select(
		"c.id AS client_id", "c.surname", "c.name", "c.patronymic", "c.phone_number",
		"o.order_number", "o.expected_date_of_issue",
		"m.name AS medication_name", "md.type AS medication_type").
		From("medicine_orders o").
		Join("clients c ON c.id = o.client_id").
		Join("prescriptions p ON p.id = o.prescription_id").
		Join("medications m ON m.id = p.medicine_id").
		Join("medicines md ON md.id = p.medicine_id").
		Where(startDataWithin(startDate, endDate)).
		OrderBy("c.surname, c.name")
}

// ClientsByMedicationName 按药剂名称和时间段查客户
func (s *QueryService) ClientsByMedicationName(medName string, startDate, endDate time.Time) ([]ClientMedicationRow, error) {
	var rows []ClientMedicationRow
	err := s.run(s.clientsByMedication(startDate, endDate).Where(sq.Eq{"m.name": medName}), &rows)
	return rows, err
}

// CountClientsByMedicationName 按药剂名称和时间段统计客户数
func (s *QueryService) CountClientsByMedicationName(medName string, startDate, endDate time.Time) (int64, error) {
	return s.count(sq.Select("COUNT(DISTINCT o.client_id)").
		From("medicine_orders o").
		Join("prescriptions p ON p.id = o.prescription_id").
		Join("medications m ON m.id = p.medicine_id").
		Where(sq.Eq{"m.name": medName}).
		Where(startDataWithin(startDate, endDate)))
}

// ClientsByMedicationType 按药剂类型和时间段查客户
func (s *QueryService) ClientsByMedicationType(medType string, startDate, endDate time.Time) ([]ClientMedicationRow, error) {
	var rows []ClientMedicationRow
	err := s.run(s.clientsByMedication(startDate, endDate).Where(sq.Eq{"md.type": medType}), &rows)
	return rows, err
}

// CountClientsByMedicationType 按药剂类型和时间段统计客户数
func (s *QueryService) CountClientsByMedicationType(medType string, startDate, endDate time.Time) (int64, error) {
	return s.count(sq.Select("COUNT(DISTINCT o.client_id)").
		From("medicine_orders o").
		Join("prescriptions p ON p.id = o.prescription_id").
		Join("medicines md ON md.id = p.medicine_id").
		Where(sq.Eq{"md.type": medType}).
		Where(startDataWithin(startDate, endDate)))
}

// MostFrequentClients 下单最多的客户，可按药剂类型或名称过滤
func (s *QueryService) MostFrequentClients(medicineType string, medicineNames []string, limit int) ([]FrequentClientRow, error) {
	if limit <= 0 {
		limit = 10
	}
	builder := sq.Select(
		"c.id AS client_id", "c.surname AS client_surname", "c.name AS client_name",
		"c.patronymic AS client_patronymic", "COUNT(o.id) AS total_orders").
		From("medicine_orders o").
		Join("clients c ON c.id = o.client_id").
		Join("prescriptions p ON p.id = o.prescription_id").
		GroupBy("c.id", "c.surname", "c.name", "c.patronymic").
		OrderBy("total_orders DESC").
		Limit(uint64(limit))

	if medicineType != "" {
		builder = builder.Join("medicines md ON md.id = p.medicine_id").
			Where(sq.Eq{"md.type": medicineType})
	}
	if len(medicineNames) > 0 {
		builder = builder.Join("medications m ON m.id = p.medicine_id").
			Where(sq.Eq{"m.name": medicineNames})
	}

	var rows []FrequentClientRow
	err := s.run(builder, &rows)
	return rows, err
}

// 药剂明细：每个配方成分一行
func (s *QueryService) medicineDetails() sq.SelectBuilder {
	return sq.Select(
		"m.id AS medicine_id", "m.name AS medicine_name", "md.type AS medicine_type",
		"t.description AS preparation_description",
		"im.name AS component_name", "cmp.amount AS component_amount",
		"im.unit_of_measure AS component_unit_of_measure", "im.price AS component_price",
		"m.current_amount AS current_stock_amount").
		From("medications m").
		Join("medicines md ON md.id = m.id").
		LeftJoin("technologies t ON t.id = md.tech_prep_id").
		LeftJoin("compositions cmp ON cmp.medicine_id = m.id").
		LeftJoin("medications im ON im.id = cmp.ingredient_id").
		OrderBy("m.id, im.name")
}

// MedicineDetails 获取全部药剂明细
func (s *QueryService) MedicineDetails() ([]MedicineDetailsRow, error) {
	var rows []MedicineDetailsRow
	err := s.run(s.medicineDetails(), &rows)
	return rows, err
}

// MedicineDetailsByName 按名称获取药剂明细
func (s *QueryService) MedicineDetailsByName(medicineName string) ([]MedicineDetailsRow, error) {
	var rows []MedicineDetailsRow
	err := s.run(s.medicineDetails().Where(sq.Eq{"m.name": medicineName}), &rows)
	return rows, err
}

// MedicinePriceAndComponents 药剂价格与配方成分价格
func (s *QueryService) MedicinePriceAndComponents(medicineName string) ([]MedicinePriceRow, error) {
	builder := sq.Select(
		"m.name AS medicine_name", "m.price AS medicine_price",
		"im.name AS component_name", "cmp.amount AS required_component_amount",
		"im.unit_of_measure AS component_unit_of_measure", "im.price AS component_price").
		From("medications m").
		Join("medicines md ON md.id = m.id").
		LeftJoin("compositions cmp ON cmp.medicine_id = m.id").
		LeftJoin("medications im ON im.id = cmp.ingredient_id").
		Where(sq.Eq{"m.name": medicineName}).
		OrderBy("im.name")

	var rows []MedicinePriceRow
	err := s.run(builder, &rows)
	return rows, err
}

// 订购次数前10的药剂
func (s *QueryService) topMedications() sq.SelectBuilder {
	return sq.Select(
		"m.id AS medication_id", "m.name AS medication_name", "COUNT(o.id) AS order_count").
		From("medicine_orders o").
		Join("prescriptions p ON p.id = o.prescription_id").
		Join("medications m ON m.id = p.medicine_id").
		GroupBy("m.id", "m.name").
		OrderBy("order_count DESC").
		Limit(10)
}

// TopMedications 获取订购最多的药剂
func (s *QueryService) TopMedications() ([]TopMedicationRow, error) {
	var rows []TopMedicationRow
	err := s.run(s.topMedications(), &rows)
	return rows, err
}

// TopMedicationsByType 按类型获取订购最多的药剂
func (s *QueryService) TopMedicationsByType(medType string) ([]TopMedicationRow, error) {
	builder := s.topMedications().
		Join("medicines md ON md.id = p.medicine_id").
		Where(sq.Eq{"md.type": medType})
	var rows []TopMedicationRow
	err := s.run(builder, &rows)
	return rows, err
}

// 库存水位查询，药剂有类型，原料类型为空
func (s *QueryService) stockLevels() sq.SelectBuilder {
	return sq.Select(
		"m.id AS medication_id", "m.name AS medication_name", "md.type AS medication_type",
		"m.current_amount", "m.critical_norm").
		From("medications m").
		LeftJoin("medicines md ON md.id = m.id").
		OrderBy("m.current_amount")
}

// MedicationsAtCriticalLevel 达到临界库存的药品
func (s *QueryService) MedicationsAtCriticalLevel() ([]StockLevelRow, error) {
	var rows []StockLevelRow
	err := s.run(s.stockLevels().Where("m.current_amount <= m.critical_norm"), &rows)
	return rows, err
}

// LowStockMedications 库存偏低的药品（低于临界库存的两倍）
func (s *QueryService) LowStockMedications() ([]StockLevelRow, error) {
	var rows []StockLevelRow
	err := s.run(s.stockLevels().Where("m.current_amount < m.critical_norm * 2"), &rows)
	return rows, err
}

// LowStockMedicationsByType 按类型获取库存偏低的药品
func (s *QueryService) LowStockMedicationsByType(medType string) ([]StockLevelRow, error) {
	builder := s.stockLevels().
		Where("m.current_amount < m.critical_norm * 2").
		Where(sq.Eq{"md.type": medType})
	var rows []StockLevelRow
	err := s.run(builder, &rows)
	return rows, err
}

// IngredientUsage 某原料在时间段内的消耗量
func (s *QueryService) IngredientUsage(ingredientName string, startDate, endDate time.Time) ([]IngredientUsageRow, error) {
	builder := sq.Select(
		"im.name AS ingredient_name", "im.unit_of_measure",
		"COALESCE(SUM(cmp.amount), 0) AS total_amount_used").
		From("compositions cmp").
		Join("medications im ON im.id = cmp.ingredient_id").
		Join("prescriptions p ON p.medicine_id = cmp.medicine_id").
		Join("medicine_orders o ON o.prescription_id = p.id").
		Where(sq.Eq{"im.name": ingredientName}).
		Where(sq.NotEq{"o.status": "cancelled"}).
		Where(startDataWithin(startDate, endDate)).
		GroupBy("im.name", "im.unit_of_measure")

	var rows []IngredientUsageRow
	err := s.run(builder, &rows)
	return rows, err
}

// 在制订单所需的原料汇总
func (s *QueryService) ingredientsForProducing() sq.SelectBuilder {
	return sq.Select(
		"im.id AS ingredient_id", "im.name AS ingredient_name",
		"SUM(cmp.amount) AS total_required_amount", "im.unit_of_measure").
		From("medicine_orders o").
		Join("prescriptions p ON p.id = o.prescription_id").
		Join("compositions cmp ON cmp.medicine_id = p.medicine_id").
		Join("medications im ON im.id = cmp.ingredient_id").
		Where(sq.Eq{"o.status": "producing"}).
		GroupBy("im.id", "im.name", "im.unit_of_measure").
		OrderBy("im.name")
}

// IngredientsForProducingOrders 获取在制订单的原料需求
func (s *QueryService) IngredientsForProducingOrders() ([]IngredientNeedRow, error) {
	var rows []IngredientNeedRow
	err := s.run(s.ingredientsForProducing(), &rows)
	return rows, err
}

// CountIngredientsForProducingOrders 统计在制订单涉及的原料数
func (s *QueryService) CountIngredientsForProducingOrders() (int64, error) {
	return s.count(sq.Select("COUNT(DISTINCT cmp.ingredient_id)").
		From("medicine_orders o").
		Join("prescriptions p ON p.id = o.prescription_id").
		Join("compositions cmp ON cmp.medicine_id = p.medicine_id").
		Where(sq.Eq{"o.status": "producing"}))
}

// ProducingOrders 获取在制订单
func (s *QueryService) ProducingOrders() ([]ProducingOrderRow, error) {
	builder := sq.Select(
		"o.id AS order_id", "o.prescription_id", "o.client_id", "o.order_number",
		"o.expected_date_of_issue", "o.status", "o.date_of_issue",
		"t.preparation_time AS production_time", "o.cost").
		From("medicine_orders o").
		Join("prescriptions p ON p.id = o.prescription_id").
		Join("medicines md ON md.id = p.medicine_id").
		LeftJoin("technologies t ON t.id = md.tech_prep_id").
		Where(sq.Eq{"o.status": "producing"}).
		OrderBy("o.expected_date_of_issue")

	var rows []ProducingOrderRow
	err := s.run(builder, &rows)
	return rows, err
}

// CountProducingOrders 统计在制订单数
func (s *QueryService) CountProducingOrders() (int64, error) {
	return s.count(sq.Select("COUNT(*)").
		From("medicine_orders o").
		Where(sq.Eq{"o.status": "producing"}))
}

// Technologies 制备工艺查询，可按药剂类型、名称或在制订单过滤
func (s *QueryService) Technologies(medicineType string, medicineNames []string, fromProducingOrders bool) ([]TechnologyRow, error) {
	builder := sq.Select(
		"t.id AS tech_id", "t.description AS tech_description",
		"m.name AS medicine_name", "md.type AS medicine_type").
		From("technologies t").
		Join("medicines md ON md.tech_prep_id = t.id").
		Join("medications m ON m.id = md.id").
		OrderBy("t.id")

	if medicineType != "" {
		builder = builder.Where(sq.Eq{"md.type": medicineType})
	}
	if len(medicineNames) > 0 {
		builder = builder.Where(sq.Eq{"m.name": medicineNames})
	}
	if fromProducingOrders {
		builder = builder.Where(`EXISTS (
			SELECT 1 FROM medicine_orders o
			JOIN prescriptions p ON p.id = o.prescription_id
			WHERE p.medicine_id = md.id AND o.status = 'producing')`)
	}

	var rows []TechnologyRow
	err := s.run(builder, &rows)
	return rows, err
}
