package verification

import (
	"context"
	"strings"
)

type gstinRequestBody struct {
	GSTIN string `json:"gstin"`
}

type gstinResponseBody struct {
	Valid                  bool       `json:"valid"`
	Message                string     `json:"message"`
	ReferenceID            flexString `json:"reference_id"`
	LegalNameOfBusiness    string     `json:"legal_name_of_business"`
	TradeNameOfBusiness    string     `json:"trade_name_of_business"`
	GSTINStatus            string     `json:"gst_in_status"`
	DateOfRegistration     string     `json:"date_of_registration"`
	ConstitutionOfBusiness string     `json:"constitution_of_business"`
}

func (c *_Client) VerifyGSTIN(ctx context.Context, ts int64, req GSTINRequest) Result {
	gstin := strings.TrimSpace(req.GSTIN)
	if gstin == "" {
		return failed("GSTIN not provided")
	}
	if len(gstin) != 15 {
		return failed(msgGSTINFormat)
	}

	var resp gstinResponseBody
	if r := c.post(ctx, "/verification/gstin", gstinRequestBody{GSTIN: gstin}, &resp, msgGSTINFailed); r != nil {
		return *r
	}

	legalName := strings.TrimSpace(resp.LegalNameOfBusiness)
	if !resp.Valid && legalName == "" {
		return Result{Status: StatusFailed, Message: "Invalid GSTIN or GSTIN not found", APIMessage: resp.Message}
	}

	tradeName := strings.TrimSpace(resp.TradeNameOfBusiness)
	businessName := legalName
	if businessName == "" {
		businessName = tradeName
	}
	return Result{
		Status:       StatusSuccess,
		Message:      "GSTIN verified successfully",
		Verified:     true,
		VerifiedDate: verifiedOn(ts),
		ReferenceID:  string(resp.ReferenceID),
		BusinessName: businessName,
		LegalName:    legalName,
		TradeName:    tradeName,
		Data:         decodeRaw(resp),
	}
}
