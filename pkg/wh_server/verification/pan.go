package verification

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type panRequestBody struct {
	PAN            string `json:"pan"`
	VerificationID string `json:"verification_id"`
	Name           string `json:"name,omitempty"`
}

type panResponseBody struct {
	Status         string     `json:"status"`
	Message        string     `json:"message"`
	VerificationID string     `json:"verification_id"`
	ReferenceID    flexString `json:"reference_id"`
	RegisteredName string     `json:"registered_name"`
	NameProvided   string     `json:"name_provided"`
	Address        *struct {
		FullAddress string     `json:"full_address"`
		Street      string     `json:"street"`
		City        string     `json:"city"`
		State       string     `json:"state"`
		Pincode     flexString `json:"pincode"`
		Zip         flexString `json:"zip"`
	} `json:"address"`
}

// titleCase upper-cases the first letter of every word. A Caser keeps state, so each call gets its own.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

func (c *_Client) VerifyPAN(ctx context.Context, ts int64, req PANRequest) Result {
	if strings.TrimSpace(req.PAN) == "" {
		return failed("PAN not provided")
	}

	body := panRequestBody{
		PAN:            strings.ToUpper(strings.TrimSpace(req.PAN)),
		VerificationID: newVerificationID("pan"),
		Name:           panName(req),
	}

	var resp panResponseBody
	if r := c.post(ctx, "/verification/pan/advance", body, &resp, msgPANFailed); r != nil {
		return *r
	}

	switch resp.Status {
	case "VALID":
	case "INVALID":
		return Result{Status: StatusFailed, Message: msgPANInvalid, APIMessage: resp.Message}
	default:
		if resp.Message != "" {
			return failed(resp.Message)
		}
		return failed("PAN verification failed")
	}

	registered := strings.ToLower(strings.TrimSpace(resp.RegisteredName))
	result := Result{
		RegisteredName: resp.RegisteredName,
		ParsedNames:    parseNames(req.CustomerType, registered),
		Address:        parseAddress(resp),
	}

	if body.Name != "" && registered != "" && !namesMatch(registered, strings.ToLower(body.Name)) {
		result.Status = StatusWarning
		result.Message = msgNameMismatch
		result.NameProvided = resp.NameProvided
		return result
	}

	result.Status = StatusSuccess
	result.Message = "PAN verified successfully"
	result.Verified = true
	result.VerifiedDate = verifiedOn(ts)
	result.VerificationID = resp.VerificationID
	result.ReferenceID = string(resp.ReferenceID)
	result.Data = decodeRaw(resp)
	return result
}

// panName is the name sent along with the PAN: first and last name for individuals, the first
// name (the business name) for everyone else.
func panName(req PANRequest) string {
	if req.CustomerType != CustomerTypeIndividual {
		return strings.ToUpper(strings.TrimSpace(req.FirstName))
	}

	parts := make([]string, 0, 2)
	for _, part := range []string{req.FirstName, req.LastName} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.ToUpper(strings.Join(parts, " "))
}

// namesMatch compares lower-cased names after collapsing whitespace. Either name containing the
// other counts as a match.
func namesMatch(registered, entered string) bool {
	registered = strings.Join(strings.Fields(registered), " ")
	entered = strings.Join(strings.Fields(entered), " ")
	return registered == entered || strings.Contains(registered, entered) || strings.Contains(entered, registered)
}

func parseNames(customerType, registered string) *ParsedNames {
	if customerType != CustomerTypeIndividual || registered == "" {
		return nil
	}

	parts := strings.Fields(registered)
	names := &ParsedNames{FirstName: titleCase(parts[0])}
	if len(parts) >= 2 {
		names.LastName = titleCase(parts[len(parts)-1])
	}
	if len(parts) > 2 {
		names.MiddleName = titleCase(strings.Join(parts[1:len(parts)-1], " "))
	}
	return names
}

func parseAddress(resp panResponseBody) *Address {
	if resp.Address == nil {
		return nil
	}

	addr := resp.Address
	full := addr.FullAddress
	if full == "" {
		full = addr.Street
	}
	zip := string(addr.Pincode)
	if zip == "" {
		zip = string(addr.Zip)
	}
	return &Address{
		Address: titleCase(full),
		City:    titleCase(addr.City),
		State:   titleCase(addr.State),
		Zip:     zip,
	}
}
