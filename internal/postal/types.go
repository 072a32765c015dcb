// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package postal

// Standardized is the provider's corrected form of a validated address.
type Standardized struct {
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip_code"`
}

// Metadata carries the delivery-point details the provider returns
// alongside the standardized address.
type Metadata struct {
	Business        bool   `json:"business"`
	Vacant          bool   `json:"vacant"`
	Centralized     bool   `json:"centralized"`
	CarrierRoute    string `json:"carrier_route,omitempty"`
	DeliveryPoint   string `json:"delivery_point,omitempty"`
	DPVConfirmation string `json:"dpv_confirmation,omitempty"`
}

// Result is the outcome of one provider validation call. A terminal
// provider rejection (malformed address, address not found) still yields a
// Result with Deliverable false; only infrastructure failures surface as
// errors to the caller.
type Result struct {
	GUID             string       `json:"guid"`
	RecordID         string       `json:"uniqueid"`
	Deliverable      bool         `json:"deliverable"`
	ResultPercentage float64      `json:"result_percentage"`
	Standardized     Standardized `json:"standardized"`
	Metadata         Metadata     `json:"metadata"`
	Method           string       `json:"validation_method"`
	Message          string       `json:"message,omitempty"`
}

const (
	methodProviderV3 = "usps_api_v3"

	// Result percentages mirror the provider confidence bands: a DPV
	// confirmed address scores 95, anything else 30.
	deliverablePercentage    = 95.0
	nonDeliverablePercentage = 30.0
)
