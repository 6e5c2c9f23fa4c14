package scenario

import "github.com/jdelgado/dealscope/internal/comps"

// Raw is a scenario exactly as the analysis service sends it: a flat record
// whose field population depends on type, with flip/wholesale cost legs
// sometimes tucked under a "details" object. Money fields use comps.Money to
// absorb the bare-number vs {value} variance.
type Raw struct {
	Name string `json:"name"`
	Type string `json:"type"`

	TotalInvestment float64  `json:"total_investment"`
	Profit          float64  `json:"profit"`
	ROI             float64  `json:"roi"`
	CashOnCash      float64  `json:"cash_on_cash"`
	CapRate         *float64 `json:"cap_rate"`
	DSCR            *float64 `json:"dscr"`

	Timeline     string `json:"timeline"`
	TimelineDays int    `json:"timeline_days"`

	// Flip / wholesale top-level fields.
	PurchasePrice comps.Money `json:"purchase_price"`
	RehabCost     float64     `json:"rehab_cost"`
	ARV           float64     `json:"arv"`
	SaleProceeds  float64     `json:"sale_proceeds"`
	MaxPurchase70 float64     `json:"max_purchase_70_rule"`
	Meets70Rule   *bool       `json:"meets_70_rule"`

	// Rental top-level fields.
	MonthlyRent          float64   `json:"monthly_rent"`
	VacancyRate          float64   `json:"vacancy_rate"`
	VacancyAmount        float64   `json:"vacancy_amount"`
	EffectiveGrossIncome float64   `json:"effective_gross_income"`
	NOI                  float64   `json:"noi"`
	MonthlyExpenses      float64   `json:"monthly_expenses"`
	ExpenseManagement    float64   `json:"expense_management"`
	ExpenseRepairs       float64   `json:"expense_repairs"`
	ExpenseCapex         float64   `json:"expense_capex"`
	ExpenseTaxes         float64   `json:"expense_taxes"`
	ExpenseInsurance     float64   `json:"expense_insurance"`
	UtilitiesIncluded    float64   `json:"utilities_included"`
	MonthlyMortgage      float64   `json:"monthly_mortgage"`
	MonthlyCashFlow      float64   `json:"monthly_cash_flow"`
	AnnualCashFlow       float64   `json:"annual_cash_flow"`
	CashInvested         float64   `json:"cash_invested"`
	DownPayment          float64   `json:"down_payment"`
	LoanAmount           float64   `json:"loan_amount"`
	RoomBreakdown        []float64 `json:"room_breakdown"`
	FMR                  float64   `json:"fmr"`
	GovernmentPortion    string    `json:"government_portion"`
	TenantPortion        string    `json:"tenant_portion"`

	Details *rawDetails `json:"details"`
}

type rawDetails struct {
	Purchase      comps.Money `json:"purchase"`
	Rehab         float64     `json:"rehab"`
	Interest      float64     `json:"interest"`
	Points        float64     `json:"points"`
	ClosingBuy    float64     `json:"closing_buy"`
	ClosingSell   float64     `json:"closing_sell"`
	ClosingCosts  float64     `json:"closing_costs"`
	Holding       float64     `json:"holding"`
	ARV           float64     `json:"arv"`
	DownPayment   float64     `json:"down_payment"`
	LoanAmount    float64     `json:"loan_amount"`
	ContractPrice comps.Money `json:"contract_price"`
	AssignmentFee float64     `json:"assignment_fee"`
	BuyerPrice    float64     `json:"buyer_price"`
	EarnestMoney  float64     `json:"earnest_money"`
}

// Normalize converts raw scenarios into canonical ones, preserving order.
func Normalize(raw []Raw) []Scenario {
	out := make([]Scenario, 0, len(raw))
	for _, r := range raw {
		out = append(out, fromRaw(r))
	}
	return out
}

func fromRaw(r Raw) Scenario {
	s := Scenario{
		Name:            r.Name,
		Type:            classify(r),
		TotalInvestment: r.TotalInvestment,
		Profit:          r.Profit,
		ROI:             r.ROI,
		CashOnCash:      r.CashOnCash,
		CapRate:         r.CapRate,
		DSCR:            r.DSCR,
		TimelineText:    r.Timeline,
		TimelineDays:    r.TimelineDays,
	}
	switch s.Type {
	case TypeRental:
		s.Rental = rentalDetails(r)
	case TypeWholesale:
		s.Wholesale = wholesaleDetails(r)
	default:
		s.Type = TypeFlip
		s.Flip = flipDetails(r)
	}
	return s
}

// classify trusts the discriminant when present and otherwise infers it from
// field population, covering the oldest backend variant which sent untyped
// records.
func classify(r Raw) Type {
	switch Type(r.Type) {
	case TypeFlip, TypeRental, TypeWholesale:
		return Type(r.Type)
	}
	if r.MonthlyRent != 0 || r.MonthlyCashFlow != 0 || r.CashOnCash != 0 {
		return TypeRental
	}
	if r.Details != nil && (r.Details.AssignmentFee != 0 || r.Details.ContractPrice.Set) {
		return TypeWholesale
	}
	return TypeFlip
}

func flipDetails(r Raw) *FlipDetails {
	d := &FlipDetails{
		PurchasePrice: r.PurchasePrice.Value,
		RehabCost:     r.RehabCost,
		ARV:           r.ARV,
		SaleProceeds:  r.SaleProceeds,
		MaxPurchase70: r.MaxPurchase70,
		Meets70Rule:   r.Meets70Rule,
		DownPayment:   r.DownPayment,
		LoanAmount:    r.LoanAmount,
	}
	if r.Details != nil {
		if d.PurchasePrice == 0 {
			d.PurchasePrice = r.Details.Purchase.Value
		}
		if d.RehabCost == 0 {
			d.RehabCost = r.Details.Rehab
		}
		if d.ARV == 0 {
			d.ARV = r.Details.ARV
		}
		if d.DownPayment == 0 {
			d.DownPayment = r.Details.DownPayment
		}
		if d.LoanAmount == 0 {
			d.LoanAmount = r.Details.LoanAmount
		}
		d.InterestCost = r.Details.Interest
		d.Points = r.Details.Points
		d.ClosingBuy = r.Details.ClosingBuy
		d.ClosingSell = r.Details.ClosingSell
		if d.ClosingBuy == 0 && d.ClosingSell == 0 {
			d.ClosingSell = r.Details.ClosingCosts
		}
		d.HoldingCost = r.Details.Holding
	}
	d.TotalCost = r.TotalInvestment
	d.GrossProfit = d.ARV - d.PurchasePrice - d.RehabCost
	if d.ARV > 0 {
		d.GrossProfitPct = d.GrossProfit / d.ARV * 100
	}
	if d.MaxPurchase70 == 0 && d.ARV > 0 {
		d.MaxPurchase70 = d.ARV*0.70 - d.RehabCost
	}
	if d.Meets70Rule == nil && d.PurchasePrice > 0 && d.MaxPurchase70 > 0 {
		meets := d.PurchasePrice <= d.MaxPurchase70
		d.Meets70Rule = &meets
	}
	return d
}

func rentalDetails(r Raw) *RentalDetails {
	return &RentalDetails{
		MonthlyRent:          r.MonthlyRent,
		VacancyRatePct:       r.VacancyRate,
		VacancyAmount:        r.VacancyAmount,
		EffectiveGrossIncome: r.EffectiveGrossIncome,
		NetOperatingIncome:   r.NOI,
		ExpenseManagement:    r.ExpenseManagement,
		ExpenseRepairs:       r.ExpenseRepairs,
		ExpenseCapex:         r.ExpenseCapex,
		ExpenseTaxes:         r.ExpenseTaxes,
		ExpenseInsurance:     r.ExpenseInsurance,
		ExpenseUtilities:     r.UtilitiesIncluded,
		ExpenseTotal:         r.MonthlyExpenses,
		DownPayment:          r.DownPayment,
		LoanAmount:           r.LoanAmount,
		MonthlyPrincipal:     r.MonthlyMortgage,
		MonthlyCashFlow:      r.MonthlyCashFlow,
		AnnualCashFlow:       r.AnnualCashFlow,
		CashInvested:         r.CashInvested,
		RoomRents:            r.RoomBreakdown,
		FairMarketRent:       r.FMR,
		GovernmentPortion:    r.GovernmentPortion,
		TenantPortion:        r.TenantPortion,
	}
}

func wholesaleDetails(r Raw) *WholesaleDetails {
	d := &WholesaleDetails{AssignmentFee: r.Profit}
	if r.Details != nil {
		d.ContractPrice = r.Details.ContractPrice.Value
		d.BuyerPrice = r.Details.BuyerPrice
		d.EarnestMoney = r.Details.EarnestMoney
		if r.Details.AssignmentFee != 0 {
			d.AssignmentFee = r.Details.AssignmentFee
		}
	}
	return d
}
