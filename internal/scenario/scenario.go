// Package scenario models the investment scenarios returned by the analysis
// service and ranks them. The backend emits one flat record per scenario
// with a type discriminant; normalization gathers the type-specific fields
// into exactly one populated detail group per record.
package scenario

import "fmt"

type Type string

const (
	TypeFlip      Type = "flip"
	TypeRental    Type = "rental"
	TypeWholesale Type = "wholesale"
)

// FlipDetails carries the fix-and-flip economics: acquisition, rehab,
// financing, the cost legs, and the 70%-rule check.
type FlipDetails struct {
	PurchasePrice float64 `json:"purchase_price"`
	RehabCost     float64 `json:"rehab_cost"`
	ARV           float64 `json:"arv"`
	SaleProceeds  float64 `json:"sale_proceeds,omitempty"`

	MaxPurchase70 float64 `json:"max_purchase_70_rule,omitempty"`
	Meets70Rule   *bool   `json:"meets_70_rule,omitempty"`

	DownPayment  float64 `json:"down_payment,omitempty"`
	LoanAmount   float64 `json:"loan_amount,omitempty"`
	Points       float64 `json:"points,omitempty"`
	InterestCost float64 `json:"interest,omitempty"`

	ClosingBuy  float64 `json:"closing_buy,omitempty"`
	ClosingSell float64 `json:"closing_sell,omitempty"`
	HoldingCost float64 `json:"holding,omitempty"`
	TotalCost   float64 `json:"total_cost,omitempty"`

	GrossProfit    float64 `json:"gross_profit,omitempty"`
	GrossProfitPct float64 `json:"gross_profit_pct,omitempty"`
}

// RentalDetails carries the hold economics: income, the expense breakdown,
// financing, cash flow, and the optional room-rent and subsidy fields.
type RentalDetails struct {
	MonthlyRent          float64 `json:"monthly_rent"`
	VacancyRatePct       float64 `json:"vacancy_rate"`
	VacancyAmount        float64 `json:"vacancy_amount,omitempty"`
	EffectiveGrossIncome float64 `json:"effective_gross_income"`
	NetOperatingIncome   float64 `json:"noi"`

	ExpenseManagement float64 `json:"expense_management,omitempty"`
	ExpenseRepairs    float64 `json:"expense_repairs,omitempty"`
	ExpenseCapex      float64 `json:"expense_capex,omitempty"`
	ExpenseTaxes      float64 `json:"expense_taxes,omitempty"`
	ExpenseInsurance  float64 `json:"expense_insurance,omitempty"`
	ExpenseUtilities  float64 `json:"utilities_included,omitempty"`
	ExpenseTotal      float64 `json:"monthly_expenses,omitempty"`

	DownPayment      float64 `json:"down_payment,omitempty"`
	LoanAmount       float64 `json:"loan_amount,omitempty"`
	MonthlyPrincipal float64 `json:"monthly_mortgage"`
	MonthlyCashFlow  float64 `json:"monthly_cash_flow"`
	AnnualCashFlow   float64 `json:"annual_cash_flow"`
	CashInvested     float64 `json:"cash_invested"`

	// RoomRents, when present, is the per-room breakdown in listing order;
	// the rents sum to MonthlyRent.
	RoomRents []float64 `json:"room_breakdown,omitempty"`

	// Subsidized-rent fields (fair market rent and split portions).
	FairMarketRent    float64 `json:"fmr,omitempty"`
	GovernmentPortion string  `json:"government_portion,omitempty"`
	TenantPortion     string  `json:"tenant_portion,omitempty"`
}

// WholesaleDetails carries the assignment economics; the assignment fee is
// the scenario's profit.
type WholesaleDetails struct {
	ContractPrice float64 `json:"contract_price"`
	AssignmentFee float64 `json:"assignment_fee"`
	BuyerPrice    float64 `json:"buyer_price"`
	EarnestMoney  float64 `json:"earnest_money,omitempty"`
}

// Scenario is one normalized investment scenario. Its identity is its
// ordinal position in the analysis response; scenarios are immutable and
// superseded wholesale by the next analysis. Exactly one of Flip, Rental,
// Wholesale is non-nil, selected by Type.
type Scenario struct {
	Name string `json:"name"`
	Type Type   `json:"type"`

	TotalInvestment float64 `json:"total_investment"`
	Profit          float64 `json:"profit"`

	ROI        float64  `json:"roi"`
	CashOnCash float64  `json:"cash_on_cash,omitempty"`
	CapRate    *float64 `json:"cap_rate,omitempty"`
	DSCR       *float64 `json:"dscr,omitempty"`

	TimelineText string `json:"timeline,omitempty"`
	TimelineDays int    `json:"timeline_days,omitempty"`

	Flip      *FlipDetails      `json:"flip,omitempty"`
	Rental    *RentalDetails    `json:"rental,omitempty"`
	Wholesale *WholesaleDetails `json:"wholesale,omitempty"`
}

// Timeline prefers the backend's string form and synthesizes one from the
// day count when only that was sent.
func (s Scenario) Timeline() string {
	if s.TimelineText != "" {
		return s.TimelineText
	}
	if s.TimelineDays > 0 {
		return fmt.Sprintf("%d days", s.TimelineDays)
	}
	return ""
}

// Headline returns the scenario's primary metric and its label. The label is
// owned by the scenario's type, never chosen globally: rentals report
// cash-on-cash, everything else reports ROI.
func (s Scenario) Headline() (value float64, label string) {
	if s.Type == TypeRental {
		if s.CashOnCash != 0 {
			return s.CashOnCash, "Cash-on-Cash"
		}
		return s.ROI, "Cash-on-Cash"
	}
	return s.ROI, "ROI"
}
