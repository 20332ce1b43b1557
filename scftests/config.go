package scftests

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL = "http://localhost:5000/api"
	healthPath     = "/health"
	apiPathSegment = "/api"
)

type Role string

const (
	RoleCoreCompany Role = "core_company"
	RoleSupplier    Role = "supplier"
	RoleFinancier   Role = "financier"
)

// Actor is a participant used as fixture data. The harness never persists actors itself; it
// only registers them with the API.
type Actor struct {
	Address       string `yaml:"address"`
	Role          Role   `yaml:"role"`
	CompanyName   string `yaml:"company_name"`
	ContactPerson string `yaml:"contact_person"`
	ContactEmail  string `yaml:"contact_email"`
}

type Actors struct {
	CoreCompany Actor `yaml:"core_company"`
	Supplier    Actor `yaml:"supplier"`
	Financier   Actor `yaml:"financier"`
}

// All returns the actors in registration order.
func (a Actors) All() []Actor {
	return []Actor{a.CoreCompany, a.Supplier, a.Financier}
}

type ReceivableConfig struct {
	Amount         string `yaml:"amount"`
	Description    string `yaml:"description"`
	DueInDays      int    `yaml:"due_in_days"`
	ContractPrefix string `yaml:"contract_prefix"`
}

type FinanceConfig struct {
	Amount string `yaml:"amount"`
	// InterestRate is in basis points.
	InterestRate int  `yaml:"interest_rate"`
	Approve      bool `yaml:"approve"`
}

// Config is everything a run needs to know about the environment and its fixture data. It is
// passed explicitly to the suite, so runs against different environments do not share state.
type Config struct {
	BaseURL    string           `yaml:"base_url"`
	HealthURL  string           `yaml:"health_url"`
	Actors     Actors           `yaml:"actors"`
	Receivable ReceivableConfig `yaml:"receivable"`
	Finance    FinanceConfig    `yaml:"finance"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Actors: Actors{
			CoreCompany: Actor{
				Address:       "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
				Role:          RoleCoreCompany,
				CompanyName:   "核心企业A",
				ContactPerson: "张三",
				ContactEmail:  "zhangsan@example.com",
			},
			Supplier: Actor{
				Address:       "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC",
				Role:          RoleSupplier,
				CompanyName:   "供应商B",
				ContactPerson: "李四",
				ContactEmail:  "lisi@example.com",
			},
			Financier: Actor{
				Address:       "0x90F79bf6EB2c4f870365E785982E1f101E93b906",
				Role:          RoleFinancier,
				CompanyName:   "金融机构C",
				ContactPerson: "王五",
				ContactEmail:  "wangwu@example.com",
			},
		},
		Receivable: ReceivableConfig{
			Amount:         "100",
			Description:    "测试应收账款",
			DueInDays:      30,
			ContractPrefix: "TEST-",
		},
		Finance: FinanceConfig{
			Amount:       "80",
			InterestRate: 500,
			Approve:      true,
		},
	}
}

// LoadConfig reads a YAML config file. Anything the file does not set keeps its value from
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// WithDefaults fills in derived values: the health URL defaults to the base URL's host with
// the API path segment removed.
func (c Config) WithDefaults() Config {
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	if c.HealthURL == "" {
		c.HealthURL = strings.TrimSuffix(c.BaseURL, apiPathSegment) + healthPath
	}
	return c
}

func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	for _, a := range c.Actors.All() {
		if a.Address == "" {
			return fmt.Errorf("actor %q has no address", a.Role)
		}
		switch a.Role {
		case RoleCoreCompany, RoleSupplier, RoleFinancier:
		default:
			return fmt.Errorf("actor %s has invalid role %q", a.Address, a.Role)
		}
	}
	// Tokens and step names are keyed by role, so each slot must hold its own role.
	for _, slot := range []struct {
		name  string
		actor Actor
		role  Role
	}{
		{"core_company", c.Actors.CoreCompany, RoleCoreCompany},
		{"supplier", c.Actors.Supplier, RoleSupplier},
		{"financier", c.Actors.Financier, RoleFinancier},
	} {
		if slot.actor.Role != slot.role {
			return fmt.Errorf("actors.%s must have role %q, got %q", slot.name, slot.role, slot.actor.Role)
		}
	}
	if c.Receivable.DueInDays <= 0 {
		return fmt.Errorf("receivable due_in_days must be positive, got %d", c.Receivable.DueInDays)
	}
	if c.Finance.InterestRate < 0 {
		return fmt.Errorf("finance interest_rate must not be negative, got %d", c.Finance.InterestRate)
	}
	return nil
}
