package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/pyme-finance/backend/internal/application/usecase/credit"
	"github.com/pyme-finance/backend/internal/domain/money"
	"github.com/pyme-finance/backend/internal/integration/persistence/model"
)

// Setup steps

func (t *testContext) aCompanyExistsNamedWithCurrency(name, currency string) error {
	companyID := uuid.New()
	now := time.Now().UTC()

	companyModel := &model.CompanyModel{
		ID:                 companyID,
		Name:               name,
		Currency:           currency,
		Timezone:           "America/Santiago",
		ReminderRecipients: pq.StringArray{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := testDB.DbConn.Create(companyModel).Error; err != nil {
		return err
	}

	t.companyIDs[name] = companyID
	t.currentCompanyID = companyID
	return nil
}

func (t *testContext) theRequestIsScopedToCompany(name string) error {
	companyID, ok := t.companyIDs[name]
	if !ok {
		return fmt.Errorf("company %q was not seeded", name)
	}
	t.currentCompanyID = companyID
	return nil
}

func (t *testContext) noCompanyScopeIsSet() error {
	t.currentCompanyID = uuid.Nil
	return nil
}

func (t *testContext) currentCompanyCurrency() (string, error) {
	var companyModel model.CompanyModel
	if err := testDB.DbConn.First(&companyModel, "id = ?", t.currentCompanyID).Error; err != nil {
		return "", fmt.Errorf("current company not found: %w", err)
	}
	return companyModel.Currency, nil
}

func (t *testContext) aTransactionExists(txType, amount, description string) error {
	return t.aTransactionExistsDatedDaysAgo(txType, amount, description, 0)
}

func (t *testContext) aTransactionExistsDatedDaysAgo(txType, amount, description string, daysAgo int) error {
	minorUnits, ok := money.ParseInput(amount)
	if !ok {
		return fmt.Errorf("invalid amount %q", amount)
	}

	currency, err := t.currentCompanyCurrency()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	transactionID := uuid.New()

	transactionModel := &model.TransactionModel{
		ID:          transactionID,
		CompanyID:   t.currentCompanyID,
		UserID:      uuid.New(),
		Type:        txType,
		Amount:      minorUnits,
		Currency:    currency,
		Description: description,
		Date:        now.AddDate(0, 0, -daysAgo),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := testDB.DbConn.Create(transactionModel).Error; err != nil {
		return err
	}

	t.lastTransactionID = transactionID
	return nil
}

func (t *testContext) aPendingCheckExists(number, bank, amount string, dueInDays int) error {
	minorUnits, ok := money.ParseInput(amount)
	if !ok {
		return fmt.Errorf("invalid amount %q", amount)
	}

	currency, err := t.currentCompanyCurrency()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	checkID := uuid.New()
	dueDate := now.AddDate(0, 0, dueInDays)

	checkModel := &model.CheckModel{
		ID:        checkID,
		CompanyID: t.currentCompanyID,
		UserID:    uuid.New(),
		Number:    number,
		Bank:      bank,
		Amount:    minorUnits,
		Currency:  currency,
		IssueDate: dueDate.AddDate(0, -1, 0),
		DueDate:   dueDate,
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := testDB.DbConn.Create(checkModel).Error; err != nil {
		return err
	}

	t.lastCheckID = checkID
	return nil
}

func (t *testContext) anActiveCreditExists(name, amount string, interestRate float64, termMonths int) error {
	minorUnits, ok := money.ParseInput(amount)
	if !ok {
		return fmt.Errorf("invalid amount %q", amount)
	}

	currency, err := t.currentCompanyCurrency()
	if err != nil {
		return err
	}

	monthlyPayment, err := credit.MonthlyPayment(minorUnits, interestRate, termMonths)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	creditID := uuid.New()

	creditModel := &model.CreditModel{
		ID:             creditID,
		CompanyID:      t.currentCompanyID,
		UserID:         uuid.New(),
		Name:           name,
		Amount:         minorUnits,
		Currency:       currency,
		InterestRate:   interestRate,
		TermMonths:     termMonths,
		MonthlyPayment: monthlyPayment,
		StartDate:      now,
		EndDate:        credit.AddMonths(now, termMonths),
		Status:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := testDB.DbConn.Create(creditModel).Error; err != nil {
		return err
	}

	t.lastCreditID = creditID
	return nil
}

func (t *testContext) aSupplierExists(name, rut string) error {
	now := time.Now().UTC()
	supplierID := uuid.New()

	supplierModel := &model.SupplierModel{
		ID:        supplierID,
		CompanyID: t.currentCompanyID,
		UserID:    uuid.New(),
		Name:      name,
		RUT:       rut,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := testDB.DbConn.Create(supplierModel).Error; err != nil {
		return err
	}

	t.lastSupplierID = supplierID
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

// Request steps

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{company_id}}", t.currentCompanyID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	content = strings.ReplaceAll(content, "{{check_id}}", t.lastCheckID.String())
	content = strings.ReplaceAll(content, "{{credit_id}}", t.lastCreditID.String())
	content = strings.ReplaceAll(content, "{{supplier_id}}", t.lastSupplierID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastResponseID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.currentCompanyID != uuid.Nil {
		req.Header.Set("X-Company-ID", t.currentCompanyID.String())
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &apiResponse{status: resp.StatusCode, raw: raw}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.response.body = string(raw)
		return nil
	}
	t.response.body = body

	if object, ok := body.(map[string]any); ok {
		if idStr, ok := object["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastResponseID = id
			}
		}
	}

	return nil
}

// Response assertion steps

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expectedStatus, t.response.status, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	switch t.response.body.(type) {
	case map[string]any, []any:
		return nil
	}
	return fmt.Errorf("response is not JSON: %s", string(t.response.raw))
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(string(t.response.raw), t.replacePlaceholders(expected)) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field %q not found in response: %s", field, string(t.response.raw))
	}

	actual := formatJSONValue(value)
	expected := t.replacePlaceholders(expectedValue)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field %q not found in response: %s", field, string(t.response.raw))
	}
	return nil
}

// Database assertion steps

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := testDB.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	count, err := countRows(entity, nil)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q, got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entity, ok := testDB.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	count, err := countRows(entity, criteria)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func countRows(entity any, criteria map[string]any) (int, error) {
	entityType := reflect.TypeOf(entity).Elem()
	entitySlice := reflect.New(reflect.SliceOf(entityType))

	query := testDB.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlice.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return 0, result.Error
	}

	return entitySlice.Elem().Len(), nil
}

// getFieldValue walks a dot-separated path through nested JSON objects and
// arrays; numeric path segments index into arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	field := object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}
	return field
}

// formatJSONValue renders a decoded JSON value for comparison. Integral
// numbers print without an exponent so features can assert minor-unit
// amounts literally.
func formatJSONValue(value any) string {
	if f, ok := value.(float64); ok && f == math.Trunc(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return fmt.Sprintf("%v", value)
}
