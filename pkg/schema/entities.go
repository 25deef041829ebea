package schema

import (
	"encoding/json"
	"fmt"

	"github.com/enescakir/emoji"
	"github.com/lexhub-io/lexadmin/pkg/types/v1"
)

var (
	statusActiveInactive = []Option{
		{Label: "Active", Value: "ACTIVE"},
		{Label: "Inactive", Value: "INACTIVE"},
	}

	caseStatuses = []Option{
		{Label: "Open", Value: "OPEN"},
		{Label: "Closed", Value: "CLOSED"},
		{Label: "Appealed", Value: "APPEALED"},
	}

	judgeStatuses = []Option{
		{Label: "Active", Value: "ACTIVE"},
		{Label: "Retired", Value: "RETIRED"},
	}

	paymentStatuses = []Option{
		{Label: "Pending", Value: "PENDING"},
		{Label: "Completed", Value: "COMPLETED"},
		{Label: "Failed", Value: "FAILED"},
	}

	subscriptionStatuses = []Option{
		{Label: "Pending", Value: "PENDING"},
		{Label: "Approved", Value: "APPROVED"},
		{Label: "Rejected", Value: "REJECTED"},
	}

	subscriptionPlans = []Option{
		{Label: "Basic", Value: "BASIC"},
		{Label: "Pro", Value: "PRO"},
		{Label: "Enterprise", Value: "ENTERPRISE"},
	}

	currencies = []Option{
		{Label: "KES", Value: "KES"},
		{Label: "USD", Value: "USD"},
		{Label: "EUR", Value: "EUR"},
	}

	paymentMethods = []Option{
		{Label: "Card", Value: "CARD"},
		{Label: "Mobile money", Value: "MOBILE_MONEY"},
		{Label: "Bank transfer", Value: "BANK_TRANSFER"},
	}

	minYear = 1900
	maxYear = 2030
	minZero = 0
)

var Banks = &Schema{
	Resource:  "banks",
	Singular:  "bank",
	Title:     "Banks",
	Icon:      emoji.Bank.String(),
	Path:      "/api/admin/banks",
	StatsPath: "/api/admin/banks/stats",
	Fields: []Field{
		{Key: "name", Label: "Name", Type: FieldText, Required: true},
		{Key: "short_name", Label: "Short name", Type: FieldText},
		{Key: "swift_code", Label: "SWIFT code", Type: FieldText},
		{Key: "status", Label: "Status", Type: FieldSelect, Default: "ACTIVE", Options: statusActiveInactive},
	},
	Filters: []Filter{
		{Key: "status", Label: "Status", Options: statusActiveInactive},
	},
	ParseList: parseBankList,
	ParseItem: parseBankItem,
}

var Cases = &Schema{
	Resource:  "cases",
	Singular:  "case",
	Title:     "Cases",
	Icon:      emoji.BalanceScale.String(),
	Path:      "/api/admin/cases",
	StatsPath: "/api/admin/cases/stats",
	Fields: []Field{
		{Key: "title", Label: "Title", Type: FieldText, Required: true},
		{Key: "case_number", Label: "Case number", Type: FieldText, Required: true},
		{Key: "year", Label: "Year", Type: FieldNumber, Required: true, Min: &minYear, Max: &maxYear},
		{Key: "court_name", Label: "Court", Type: FieldText},
		{Key: "status", Label: "Status", Type: FieldSelect, Default: "OPEN", Options: caseStatuses},
		{Key: "filed_date", Label: "Filed", Type: FieldDate, Placeholder: "YYYY-MM-DD"},
	},
	Filters: []Filter{
		{Key: "status", Label: "Status", Options: caseStatuses},
	},
	ParseList: parseCaseList,
	ParseItem: parseCaseItem,
}

var Judges = &Schema{
	Resource:  "judges",
	Singular:  "judge",
	Title:     "Judges",
	Icon:      emoji.ManJudge.String(),
	Path:      "/api/admin/judges",
	StatsPath: "/api/admin/judges/stats",
	Fields: []Field{
		{Key: "first_name", Label: "First name", Type: FieldText, Required: true},
		{Key: "last_name", Label: "Last name", Type: FieldText, Required: true},
		{Key: "court_name", Label: "Court", Type: FieldText},
		{Key: "appointed_date", Label: "Appointed", Type: FieldDate, Placeholder: "YYYY-MM-DD"},
		{Key: "status", Label: "Status", Type: FieldSelect, Default: "ACTIVE", Options: judgeStatuses},
	},
	Filters: []Filter{
		{Key: "status", Label: "Status", Options: judgeStatuses},
	},
	ParseList: parseJudgeList,
	ParseItem: parseJudgeItem,
}

var Payments = &Schema{
	Resource:  "payments",
	Singular:  "payment",
	Title:     "Payments",
	Icon:      emoji.MoneyWithWings.String(),
	Path:      "/api/admin/payments",
	StatsPath: "/api/admin/payments/stats",
	Fields: []Field{
		{Key: "payer_email", Label: "Payer email", Type: FieldText, Required: true},
		{Key: "amount", Label: "Amount", Type: FieldDecimal, Required: true, Min: &minZero},
		{Key: "currency", Label: "Currency", Type: FieldSelect, Default: "KES", Options: currencies},
		{Key: "method", Label: "Method", Type: FieldSelect, Options: paymentMethods},
		{Key: "status", Label: "Status", Type: FieldSelect, Default: "PENDING", Options: paymentStatuses},
		{Key: "paid_at", Label: "Paid", Type: FieldDate, Placeholder: "YYYY-MM-DD"},
	},
	Filters: []Filter{
		{Key: "status", Label: "Status", Options: paymentStatuses},
	},
	ParseList: parsePaymentList,
	ParseItem: parsePaymentItem,
}

var People = &Schema{
	Resource:  "people",
	Singular:  "person",
	Title:     "People",
	Icon:      emoji.BustsInSilhouette.String(),
	Path:      "/api/admin/people",
	StatsPath: "/api/admin/people/stats",
	Fields: []Field{
		{Key: "first_name", Label: "First name", Type: FieldText, Required: true},
		{Key: "last_name", Label: "Last name", Type: FieldText, Required: true},
		{Key: "national_id", Label: "National ID", Type: FieldText},
		{Key: "email", Label: "Email", Type: FieldText},
		{Key: "phone", Label: "Phone", Type: FieldText},
	},
	ParseList: parsePersonList,
	ParseItem: parsePersonItem,
}

var Roles = &Schema{
	Resource: "roles",
	Singular: "role",
	Title:    "Roles",
	Icon:     emoji.Key.String(),
	Path:     "/api/admin/roles/roles",
	Fields: []Field{
		{Key: "name", Label: "Name", Type: FieldText, Required: true},
		{Key: "description", Label: "Description", Type: FieldText},
	},
	ParseList: parseRoleList,
	ParseItem: parseRoleItem,
}

var Permissions = &Schema{
	Resource: "permissions",
	Singular: "permission",
	Title:    "Permissions",
	Icon:     emoji.Locked.String(),
	Path:     "/api/admin/roles/permissions",
	Fields: []Field{
		{Key: "name", Label: "Name", Type: FieldText, Required: true},
		{Key: "codename", Label: "Codename", Type: FieldText, Required: true},
		{Key: "description", Label: "Description", Type: FieldText},
	},
	ParseList: parsePermissionList,
	ParseItem: parsePermissionItem,
}

var UserRoles = &Schema{
	Resource: "user_roles",
	Singular: "user role",
	Title:    "User roles",
	Icon:     emoji.Link.String(),
	Path:     "/api/admin/roles/user-roles",
	Fields: []Field{
		{Key: "user_email", Label: "User email", Type: FieldText, Required: true},
		{Key: "role_id", Label: "Role ID", Type: FieldNumber, Required: true},
	},
	ParseList: parseUserRoleList,
	ParseItem: parseUserRoleItem,
}

var SubscriptionRequests = &Schema{
	Resource:  "subscription_requests",
	Singular:  "subscription request",
	Title:     "Subscription requests",
	Icon:      emoji.Envelope.String(),
	Path:      "/api/admin/subscription-requests",
	StatsPath: "/api/admin/subscription-requests/stats",
	Fields: []Field{
		{Key: "email", Label: "Email", Type: FieldText, Required: true},
		{Key: "plan", Label: "Plan", Type: FieldSelect, Default: "BASIC", Options: subscriptionPlans},
		{Key: "status", Label: "Status", Type: FieldSelect, Default: "PENDING", Options: subscriptionStatuses},
		{Key: "expires_at", Label: "Expires", Type: FieldDate, Placeholder: "YYYY-MM-DD"},
	},
	Filters: []Filter{
		{Key: "status", Label: "Status", Options: subscriptionStatuses},
	},
	ParseList: parseSubscriptionList,
	ParseItem: parseSubscriptionItem,
}

// All returns the management screens in display order.
func All() []*Schema {
	return []*Schema{
		Banks,
		Cases,
		Judges,
		Payments,
		People,
		Roles,
		Permissions,
		UserRoles,
		SubscriptionRequests,
	}
}

func ByResource(resource string) (*Schema, error) {
	for _, s := range All() {
		if s.Resource == resource {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown resource %q", resource)
}

func parseBankList(data []byte) ([]v1.Record, v1.ListMeta, error) {
	var env struct {
		Banks []*v1.Bank `json:"banks"`
		v1.ListMeta
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, v1.ListMeta{}, fmt.Errorf("unable to decode bank list: %w", err)
	}
	recs := make([]v1.Record, len(env.Banks))
	for i, b := range env.Banks {
		recs[i] = b
	}
	return recs, env.ListMeta, nil
}

func parseBankItem(data []byte) (v1.Record, error) {
	var b v1.Bank
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("unable to decode bank: %w", err)
	}
	return &b, nil
}

func parseCaseList(data []byte) ([]v1.Record, v1.ListMeta, error) {
	var env struct {
		Cases []*v1.Case `json:"cases"`
		v1.ListMeta
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, v1.ListMeta{}, fmt.Errorf("unable to decode case list: %w", err)
	}
	recs := make([]v1.Record, len(env.Cases))
	for i, c := range env.Cases {
		recs[i] = c
	}
	return recs, env.ListMeta, nil
}

func parseCaseItem(data []byte) (v1.Record, error) {
	var c v1.Case
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unable to decode case: %w", err)
	}
	return &c, nil
}

func parseJudgeList(data []byte) ([]v1.Record, v1.ListMeta, error) {
	var env struct {
		Judges []*v1.Judge `json:"judges"`
		v1.ListMeta
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, v1.ListMeta{}, fmt.Errorf("unable to decode judge list: %w", err)
	}
	recs := make([]v1.Record, len(env.Judges))
	for i, j := range env.Judges {
		recs[i] = j
	}
	return recs, env.ListMeta, nil
}

func parseJudgeItem(data []byte) (v1.Record, error) {
	var j v1.Judge
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("unable to decode judge: %w", err)
	}
	return &j, nil
}

func parsePaymentList(data []byte) ([]v1.Record, v1.ListMeta, error) {
	var env struct {
		Payments []*v1.Payment `json:"payments"`
		v1.ListMeta
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, v1.ListMeta{}, fmt.Errorf("unable to decode payment list: %w", err)
	}
	recs := make([]v1.Record, len(env.Payments))
	for i, p := range env.Payments {
		recs[i] = p
	}
	return recs, env.ListMeta, nil
}

func parsePaymentItem(data []byte) (v1.Record, error) {
	var p v1.Payment
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unable to decode payment: %w", err)
	}
	return &p, nil
}

func parsePersonList(data []byte) ([]v1.Record, v1.ListMeta, error) {
	var env struct {
		People []*v1.Person `json:"people"`
		v1.ListMeta
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, v1.ListMeta{}, fmt.Errorf("unable to decode person list: %w", err)
	}
	recs := make([]v1.Record, len(env.People))
	for i, p := range env.People {
		recs[i] = p
	}
	return recs, env.ListMeta, nil
}

func parsePersonItem(data []byte) (v1.Record, error) {
	var p v1.Person
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unable to decode person: %w", err)
	}
	return &p, nil
}

func parseRoleList(data []byte) ([]v1.Record, v1.ListMeta, error) {
	var env struct {
		Roles []*v1.Role `json:"roles"`
		v1.ListMeta
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, v1.ListMeta{}, fmt.Errorf("unable to decode role list: %w", err)
	}
	recs := make([]v1.Record, len(env.Roles))
	for i, r := range env.Roles {
		recs[i] = r
	}
	return recs, env.ListMeta, nil
}

func parseRoleItem(data []byte) (v1.Record, error) {
	var r v1.Role
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unable to decode role: %w", err)
	}
	return &r, nil
}

func parsePermissionList(data []byte) ([]v1.Record, v1.ListMeta, error) {
	var env struct {
		Permissions []*v1.Permission `json:"permissions"`
		v1.ListMeta
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, v1.ListMeta{}, fmt.Errorf("unable to decode permission list: %w", err)
	}
	recs := make([]v1.Record, len(env.Permissions))
	for i, p := range env.Permissions {
		recs[i] = p
	}
	return recs, env.ListMeta, nil
}

func parsePermissionItem(data []byte) (v1.Record, error) {
	var p v1.Permission
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unable to decode permission: %w", err)
	}
	return &p, nil
}

func parseUserRoleList(data []byte) ([]v1.Record, v1.ListMeta, error) {
	var env struct {
		UserRoles []*v1.UserRole `json:"user_roles"`
		v1.ListMeta
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, v1.ListMeta{}, fmt.Errorf("unable to decode user role list: %w", err)
	}
	recs := make([]v1.Record, len(env.UserRoles))
	for i, u := range env.UserRoles {
		recs[i] = u
	}
	return recs, env.ListMeta, nil
}

func parseUserRoleItem(data []byte) (v1.Record, error) {
	var u v1.UserRole
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("unable to decode user role: %w", err)
	}
	return &u, nil
}

func parseSubscriptionList(data []byte) ([]v1.Record, v1.ListMeta, error) {
	var env struct {
		SubscriptionRequests []*v1.SubscriptionRequest `json:"subscription_requests"`
		v1.ListMeta
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, v1.ListMeta{}, fmt.Errorf("unable to decode subscription request list: %w", err)
	}
	recs := make([]v1.Record, len(env.SubscriptionRequests))
	for i, s := range env.SubscriptionRequests {
		recs[i] = s
	}
	return recs, env.ListMeta, nil
}

func parseSubscriptionItem(data []byte) (v1.Record, error) {
	var s v1.SubscriptionRequest
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unable to decode subscription request: %w", err)
	}
	return &s, nil
}
