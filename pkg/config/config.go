package config

import (
	"fmt"
	"io"
	"io/ioutil"
	"time"

	"github.com/go-playground/validator"
	"gopkg.in/yaml.v3"
)

var (
	// Default is the configuration used when ~/.lexadmin.yaml is absent or
	// only partially filled in.
	Default = Config{
		APIBaseURL:     "http://localhost:8000",
		PageLimit:      10,
		RequestTimeout: 30 * time.Second,
		DebounceWindow: 300 * time.Millisecond,
	}
)

type Config struct {
	// APIBaseURL is the root of the platform API, e.g. https://api.lexhub.example
	APIBaseURL string `yaml:"apiBaseURL" validate:"required,url"`

	// Token is the bearer token presented on every request. When empty, the
	// token cached in the XDG runtime directory is used instead.
	Token     string `yaml:"token,omitempty" validate:""`
	TokenFile string `yaml:"tokenFile,omitempty" validate:""`

	// PageLimit is the page size requested from list endpoints.
	PageLimit int `yaml:"pageLimit" validate:"required,min=1,max=100"`

	RequestTimeout time.Duration `yaml:"requestTimeout" validate:"required"`

	// DebounceWindow is how long search input must be quiet before a fetch
	// is committed.
	DebounceWindow time.Duration `yaml:"debounceWindow" validate:"required"`

	// UploadInbox is a local directory scanned for case documents that can
	// be pushed through the case ingestion endpoint.
	UploadInbox string `yaml:"uploadInbox,omitempty" validate:""`
}

func NewFromReader(r io.Reader) (*Config, error) {
	c := Default

	bytes, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read Config: %w", err)
	}
	err = yaml.Unmarshal(bytes, &c)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal Config: %w", err)
	}

	validate := validator.New()
	err = validate.Struct(c)
	if err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &c, nil
}
