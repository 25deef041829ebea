package v1

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator"
)

// The admin surface mirrors server state transiently; these structs exist
// for decoding and display only and hold no client-side identity beyond
// the server's id.

type Bank struct {
	ID        ID     `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	ShortName string `json:"short_name,omitempty" validate:""`
	SwiftCode string `json:"swift_code,omitempty" validate:""`
	Status    string `json:"status,omitempty" validate:""`
	CreatedAt string `json:"created_at,omitempty" validate:""`
}

func (b *Bank) Identifier() ID  { return b.ID }
func (b *Bank) Display() string { return b.Name }
func (b *Bank) Summary() string { return joinNonEmpty(" • ", b.ShortName, b.SwiftCode, b.Status) }
func (b *Bank) Fields() map[string]string {
	return map[string]string{
		"name":       b.Name,
		"short_name": b.ShortName,
		"swift_code": b.SwiftCode,
		"status":     b.Status,
	}
}

func (b *Bank) Validate() error {
	validate := validator.New()
	return validate.Struct(*b)
}

type Case struct {
	ID         ID     `json:"id" validate:"required"`
	Title      string `json:"title" validate:"required"`
	CaseNumber string `json:"case_number,omitempty" validate:""`
	Year       int    `json:"year,omitempty" validate:""`
	CourtName  string `json:"court_name,omitempty" validate:""`
	Status     string `json:"status,omitempty" validate:""`
	FiledDate  string `json:"filed_date,omitempty" validate:""`
	CreatedAt  string `json:"created_at,omitempty" validate:""`
}

func (c *Case) Identifier() ID  { return c.ID }
func (c *Case) Display() string { return c.Title }
func (c *Case) Summary() string {
	year := ""
	if c.Year != 0 {
		year = strconv.Itoa(c.Year)
	}
	return joinNonEmpty(" • ", c.CaseNumber, year, c.CourtName, c.Status)
}
func (c *Case) Fields() map[string]string {
	year := ""
	if c.Year != 0 {
		year = strconv.Itoa(c.Year)
	}
	return map[string]string{
		"title":       c.Title,
		"case_number": c.CaseNumber,
		"year":        year,
		"court_name":  c.CourtName,
		"status":      c.Status,
		"filed_date":  DateOnly(c.FiledDate),
	}
}

func (c *Case) Validate() error {
	validate := validator.New()
	return validate.Struct(*c)
}

type Judge struct {
	ID            ID     `json:"id" validate:"required"`
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	CourtName     string `json:"court_name,omitempty" validate:""`
	AppointedDate string `json:"appointed_date,omitempty" validate:""`
	Status        string `json:"status,omitempty" validate:""`
}

func (j *Judge) Identifier() ID  { return j.ID }
func (j *Judge) Display() string { return fmt.Sprintf("%s %s", j.FirstName, j.LastName) }
func (j *Judge) Summary() string { return joinNonEmpty(" • ", j.CourtName, j.Status) }
func (j *Judge) Fields() map[string]string {
	return map[string]string{
		"first_name":     j.FirstName,
		"last_name":      j.LastName,
		"court_name":     j.CourtName,
		"appointed_date": DateOnly(j.AppointedDate),
		"status":         j.Status,
	}
}

func (j *Judge) Validate() error {
	validate := validator.New()
	return validate.Struct(*j)
}

type Payment struct {
	ID         ID      `json:"id" validate:"required"`
	PayerEmail string  `json:"payer_email" validate:"required,email"`
	Amount     float64 `json:"amount" validate:""`
	Currency   string  `json:"currency,omitempty" validate:""`
	Method     string  `json:"method,omitempty" validate:""`
	Status     string  `json:"status,omitempty" validate:""`
	PaidAt     string  `json:"paid_at,omitempty" validate:""`
}

func (p *Payment) Identifier() ID  { return p.ID }
func (p *Payment) Display() string { return p.PayerEmail }
func (p *Payment) Summary() string {
	amount := fmt.Sprintf("%.2f %s", p.Amount, p.Currency)
	return joinNonEmpty(" • ", amount, p.Method, p.Status)
}
func (p *Payment) Fields() map[string]string {
	return map[string]string{
		"payer_email": p.PayerEmail,
		"amount":      strconv.FormatFloat(p.Amount, 'f', 2, 64),
		"currency":    p.Currency,
		"method":      p.Method,
		"status":      p.Status,
		"paid_at":     DateOnly(p.PaidAt),
	}
}

func (p *Payment) Validate() error {
	validate := validator.New()
	return validate.Struct(*p)
}

type Person struct {
	ID         ID     `json:"id" validate:"required"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	NationalID string `json:"national_id,omitempty" validate:""`
	Email      string `json:"email,omitempty" validate:""`
	Phone      string `json:"phone,omitempty" validate:""`
}

func (p *Person) Identifier() ID  { return p.ID }
func (p *Person) Display() string { return fmt.Sprintf("%s %s", p.FirstName, p.LastName) }
func (p *Person) Summary() string { return joinNonEmpty(" • ", p.Email, p.NationalID, p.Phone) }
func (p *Person) Fields() map[string]string {
	return map[string]string{
		"first_name":  p.FirstName,
		"last_name":   p.LastName,
		"national_id": p.NationalID,
		"email":       p.Email,
		"phone":       p.Phone,
	}
}

func (p *Person) Validate() error {
	validate := validator.New()
	return validate.Struct(*p)
}

type Role struct {
	ID          ID     `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty" validate:""`
}

func (r *Role) Identifier() ID  { return r.ID }
func (r *Role) Display() string { return r.Name }
func (r *Role) Summary() string { return r.Description }
func (r *Role) Fields() map[string]string {
	return map[string]string{
		"name":        r.Name,
		"description": r.Description,
	}
}

func (r *Role) Validate() error {
	validate := validator.New()
	return validate.Struct(*r)
}

type Permission struct {
	ID          ID     `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Codename    string `json:"codename" validate:"required"`
	Description string `json:"description,omitempty" validate:""`
}

func (p *Permission) Identifier() ID  { return p.ID }
func (p *Permission) Display() string { return p.Name }
func (p *Permission) Summary() string { return joinNonEmpty(" • ", p.Codename, p.Description) }
func (p *Permission) Fields() map[string]string {
	return map[string]string{
		"name":        p.Name,
		"codename":    p.Codename,
		"description": p.Description,
	}
}

func (p *Permission) Validate() error {
	validate := validator.New()
	return validate.Struct(*p)
}

// UserRole is a user-to-role assignment, a sub-resource of roles.
type UserRole struct {
	ID        ID     `json:"id" validate:"required"`
	UserEmail string `json:"user_email" validate:"required,email"`
	RoleID    ID     `json:"role_id" validate:"required"`
	RoleName  string `json:"role_name,omitempty" validate:""`
}

func (u *UserRole) Identifier() ID  { return u.ID }
func (u *UserRole) Display() string { return u.UserEmail }
func (u *UserRole) Summary() string {
	if u.RoleName != "" {
		return u.RoleName
	}
	return fmt.Sprintf("role %s", u.RoleID)
}
func (u *UserRole) Fields() map[string]string {
	return map[string]string{
		"user_email": u.UserEmail,
		"role_id":    u.RoleID.String(),
	}
}

func (u *UserRole) Validate() error {
	validate := validator.New()
	return validate.Struct(*u)
}

type SubscriptionRequest struct {
	ID          ID     `json:"id" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Plan        string `json:"plan,omitempty" validate:""`
	Status      string `json:"status,omitempty" validate:""`
	RequestedAt string `json:"requested_at,omitempty" validate:""`
	ExpiresAt   string `json:"expires_at,omitempty" validate:""`
}

func (s *SubscriptionRequest) Identifier() ID  { return s.ID }
func (s *SubscriptionRequest) Display() string { return s.Email }
func (s *SubscriptionRequest) Summary() string { return joinNonEmpty(" • ", s.Plan, s.Status) }
func (s *SubscriptionRequest) Fields() map[string]string {
	return map[string]string{
		"email":      s.Email,
		"plan":       s.Plan,
		"status":     s.Status,
		"expires_at": DateOnly(s.ExpiresAt),
	}
}

func (s *SubscriptionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(*s)
}
