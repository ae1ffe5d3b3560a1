package verification

import (
	"context"
	"strings"
)

type aadhaarRequestBody struct {
	AadhaarNumber string `json:"aadhaar_number"`
}

type aadhaarResponseBody struct {
	Status  string     `json:"status"`
	Message string     `json:"message"`
	RefID   flexString `json:"ref_id"`
}

// VerifyAadhaar starts an offline Aadhaar verification. A successful result carries the reference
// id of the OTP that was sent to the holder.
func (c *_Client) VerifyAadhaar(ctx context.Context, ts int64, req AadhaarRequest) Result {
	aadhaar := strings.ReplaceAll(strings.TrimSpace(req.Aadhaar), " ", "")
	if aadhaar == "" {
		return failed("Aadhaar not provided")
	}
	if len(aadhaar) != 12 || strings.Trim(aadhaar, "0123456789") != "" {
		return failed("Invalid Aadhaar format. Aadhaar should be 12 digits")
	}

	var resp aadhaarResponseBody
	if r := c.post(ctx, "/verification/offline-aadhaar/otp", aadhaarRequestBody{AadhaarNumber: aadhaar}, &resp, "Aadhaar Verification Failed"); r != nil {
		return *r
	}

	if resp.Status != "SUCCESS" {
		message := resp.Message
		if message == "" {
			message = "Aadhaar verification failed"
		}
		return Result{Status: StatusFailed, Message: message}
	}

	return Result{
		Status:      StatusSuccess,
		Message:     "OTP sent successfully",
		ReferenceID: string(resp.RefID),
		APIMessage:  resp.Message,
	}
}
