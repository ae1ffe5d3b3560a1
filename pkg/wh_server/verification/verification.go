// Package verification checks customer identity documents (PAN, GSTIN, Aadhaar) against the
// Cashfree verification API.
//
// Every outcome, including transport failures, is reported as a Result. Nothing is retried.
package verification

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/util"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type Status string

const (
	StatusSuccess = Status("success")
	StatusWarning = Status("warning")
	StatusFailed  = Status("failed")

	CustomerTypeIndividual = "Individual / Farmer"

	DefaultTimeout = 10 * time.Second
)

const (
	msgTimeout      = "Request timeout. Please try again."
	msgNetwork      = "Network error. Please try again."
	msgFailed       = "Verification failed. Please try again."
	msgPANFailed    = "PAN Verification Failed"
	msgGSTINFailed  = "GSTIN Verification Failed"
	msgGSTINFormat  = "Invalid GSTIN format. GSTIN should be 15 characters"
	msgPANInvalid   = "Invalid PAN or PAN not found"
	msgNameMismatch = "PAN verification failed: Name mismatch"
)

type Config struct {
	BaseURL      string  `yaml:"base_url"`
	ClientID     string  `yaml:"client_id"`
	ClientSecret string  `yaml:"client_secret"`
	Timeout      int     `yaml:"timeout"`    // Seconds. Defaults to 10.
	RateLimit    float64 `yaml:"rate_limit"` // Requests per second. Zero means unlimited.
	Burst        int     `yaml:"burst"`
}

type Verifier interface {
	VerifyPAN(ctx context.Context, ts int64, req PANRequest) Result
	VerifyGSTIN(ctx context.Context, ts int64, req GSTINRequest) Result
	VerifyAadhaar(ctx context.Context, ts int64, req AadhaarRequest) Result
}

type PANRequest struct {
	PAN          string `json:"pan"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	CustomerType string `json:"customer_type"`
}

type GSTINRequest struct {
	GSTIN string `json:"gstin"`
}

type AadhaarRequest struct {
	Aadhaar string `json:"aadhaar"`
}

type ParsedNames struct {
	FirstName  string `json:"first_name,omitempty"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
}

type Address struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

type Result struct {
	Status       Status      `json:"status"`
	Message      string      `json:"message"`
	Verified     bool        `json:"verified"`
	VerifiedDate *model.Date `json:"verified_date,omitempty"`

	VerificationID string `json:"verification_id,omitempty"`
	ReferenceID    string `json:"reference_id,omitempty"`
	APIMessage     string `json:"api_message,omitempty"`

	// PAN
	RegisteredName string       `json:"registered_name,omitempty"`
	NameProvided   string       `json:"name_provided,omitempty"`
	ParsedNames    *ParsedNames `json:"parsed_names,omitempty"`
	Address        *Address     `json:"address_data,omitempty"`

	// GSTIN
	BusinessName string `json:"business_name,omitempty"`
	LegalName    string `json:"legal_name,omitempty"`
	TradeName    string `json:"trade_name,omitempty"`

	Data map[string]any `json:"data,omitempty"` // Raw response of a successful verification.
}

type _Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	limiter      *rate.Limiter
}

func NewClient(cfg Config) Verifier {
	timeout := DefaultTimeout
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &_Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   &http.Client{Timeout: timeout},
		limiter:      limiter,
	}
}

func failed(message string) Result {
	return Result{Status: StatusFailed, Message: message}
}

func verifiedOn(ts int64) *model.Date {
	d := model.NewDate(time.Unix(ts, 0))
	return &d
}

// post sends payload to path and decodes a 200 response into resp. On failure it returns the
// Result to hand back to the caller.
func (c *_Client) post(ctx context.Context, path string, payload any, resp any, statusMessage string) *Result {
	if err := c.limiter.Wait(ctx); err != nil {
		logrus.Warnf("verification rate limit: %v", err)
		r := failed(msgTimeout)
		return &r
	}

	body, err := json.Marshal(payload)
	if err != nil {
		r := failed(msgFailed)
		return &r
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		logrus.Errorf("create verification request: %v", err)
		r := failed(msgFailed)
		return &r
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-client-id", c.clientID)
	req.Header.Set("x-client-secret", c.clientSecret)

	res, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			r := failed(msgTimeout)
			return &r
		}
		logrus.Errorf("verification %s: %v", path, err)
		r := failed(msgNetwork)
		return &r
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(res.Body)
		logrus.Debugf("verification %s returned %d: %s", path, res.StatusCode, string(b))
		r := failed(statusMessage)
		return &r
	}

	if err := json.NewDecoder(res.Body).Decode(resp); err != nil {
		logrus.Errorf("decode verification response of %s: %v", path, err)
		r := failed(msgFailed)
		return &r
	}
	return nil
}

func decodeRaw(v any) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	raw := make(map[string]any)
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	return raw
}

// flexString accepts both JSON strings and numbers.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = flexString(str)
		return nil
	}
	if string(b) == "null" {
		*s = ""
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("neither string nor number: %s", string(b))
	}
	*s = flexString(num.String())
	return nil
}

func newVerificationID(kind string) string {
	return fmt.Sprintf("%s_verify_%s", kind, util.NewHexID(16))
}
