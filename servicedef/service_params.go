package servicedef

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

// API paths, relative to the API base URL.
const (
	PathRegister           = "/auth/register"
	PathLogin              = "/auth/login"
	PathCurrentUser        = "/auth/me"
	PathReceivables        = "/receivables"
	PathFinanceApply       = "/finance/apply"
	PathFinanceApplication = "/finance/applications"
)

type RegisterParams struct {
	Address       string                 `json:"address"`
	Role          string                 `json:"role"`
	CompanyName   string                 `json:"companyName"`
	ContactPerson ldvalue.OptionalString `json:"contactPerson"`
	ContactEmail  ldvalue.OptionalString `json:"contactEmail"`
}

type LoginParams struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
	Message   string `json:"message"`
}

type CreateReceivableParams struct {
	Supplier       string `json:"supplier"`
	Amount         string `json:"amount"`
	DueTime        string `json:"dueTime"`
	Description    string `json:"description"`
	ContractNumber string `json:"contractNumber"`
}

type ApplyFinanceParams struct {
	ReceivableID  string `json:"receivableId"`
	Financier     string `json:"financier"`
	FinanceAmount string `json:"financeAmount"`
	InterestRate  int    `json:"interestRate"`
}

type ApproveFinanceParams struct {
	Approve bool `json:"approve"`
}
