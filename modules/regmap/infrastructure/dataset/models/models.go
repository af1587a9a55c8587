// Package models mirrors the shape of the embedded dataset document.
package models

type TimelineEntry struct {
	Date   string `json:"date"`
	Label  string `json:"label"`
	Detail string `json:"detail"`
}

type StateRecord struct {
	Name               string          `json:"name"`
	Status             string          `json:"status,omitempty"`
	Summary            string          `json:"summary"`
	KeyLaws            []string        `json:"keyLaws"`
	RecentDevelopments string          `json:"recentDevelopments"`
	Sources            []string        `json:"sources"`
	LastUpdated        string          `json:"lastUpdated,omitempty"`
	Timeline           []TimelineEntry `json:"timeline,omitempty"`
	RegulatoryBody     string          `json:"regulatoryBody,omitempty"`
}

type FederalContext struct {
	Headline    string   `json:"headline"`
	Summary     string   `json:"summary"`
	KeyPoints   []string `json:"keyPoints"`
	LastUpdated string   `json:"lastUpdated,omitempty"`
}

type FederalBill struct {
	Name    string   `json:"name"`
	Chamber string   `json:"chamber"`
	Status  string   `json:"status"`
	Summary string   `json:"summary"`
	Sources []string `json:"sources"`
}

type StateIssuedStablecoin struct {
	State    string `json:"state"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Status   string `json:"status"`
	Detail   string `json:"detail"`
	Launched string `json:"launched,omitempty"`
}

type Development struct {
	Date   string `json:"date"`
	State  string `json:"state"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type Dataset struct {
	FederalContext         *FederalContext         `json:"federalContext,omitempty"`
	States                 map[string]StateRecord  `json:"states,omitempty"`
	StateIssuedStablecoins []StateIssuedStablecoin `json:"stateIssuedStablecoins,omitempty"`
	PendingFederalBills    []FederalBill           `json:"pendingFederalBills,omitempty"`
	MajorStateDevelopments []Development           `json:"majorStateDevelopments,omitempty"`
}
