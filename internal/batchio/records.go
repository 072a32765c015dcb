// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package batchio

import (
	"fmt"
	"io"

	"datacleanse/internal/address"
	"datacleanse/internal/names"
)

// Column aliases accepted in input headers, checked in order.
var (
	idAliases       = []string{"uniqueid", "id", "unique_id", "record_id"}
	nameAliases     = []string{"name", "full_name", "fullname"}
	genderAliases   = []string{"gender", "gender_cd"}
	partyAliases    = []string{"party_type", "party", "party_cd"}
	parseIndAliases = []string{"parse_ind", "parse"}
	line1Aliases    = []string{"line1", "address1", "street", "street_address", "address"}
	line2Aliases    = []string{"line2", "address2"}
	cityAliases     = []string{"city"}
	stateAliases    = []string{"state", "state_cd", "st"}
	zipAliases      = []string{"zip", "zip_code", "zipcd", "zipcode", "postal_code"}
	countryAliases  = []string{"country", "country_cd"}
)

func pick(record map[string]string, aliases []string) string {
	for _, key := range aliases {
		if v, ok := record[key]; ok && v != "" {
			return v
		}
	}
	return ""
}

// ToNameRecords drains a source into name records. Rows without an ID get
// a positional one.
func ToNameRecords(src RecordSource) ([]names.Record, error) {
	var records []names.Record
	for {
		row, err := src.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(records)+2, err)
		}

		rec := names.Record{
			ID:         pick(row, idAliases),
			FullName:   pick(row, nameAliases),
			GenderHint: pick(row, genderAliases),
			PartyHint:  pick(row, partyAliases),
			ParseInd:   pick(row, parseIndAliases),
		}
		if rec.ID == "" {
			rec.ID = fmt.Sprintf("row-%d", len(records)+1)
		}
		records = append(records, rec)
	}
}

// ToAddressRecords drains a source into address records.
func ToAddressRecords(src RecordSource) ([]address.Record, error) {
	var records []address.Record
	for {
		row, err := src.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(records)+2, err)
		}

		rec := address.Record{
			ID:      pick(row, idAliases),
			Line1:   pick(row, line1Aliases),
			Line2:   pick(row, line2Aliases),
			City:    pick(row, cityAliases),
			State:   pick(row, stateAliases),
			Zip:     pick(row, zipAliases),
			Country: pick(row, countryAliases),
		}
		if rec.ID == "" {
			rec.ID = fmt.Sprintf("row-%d", len(records)+1)
		}
		records = append(records, rec)
	}
}
