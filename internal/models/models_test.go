package models

import "testing"

func TestQueryIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		query    Query
		expected bool
	}{
		{name: "zero value", query: Query{}, expected: true},
		{name: "chapter set", query: Query{Chapter: "1"}, expected: false},
		{name: "status set", query: Query{Status: "desired"}, expected: false},
		{name: "space is not empty", query: Query{Description: " "}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.IsEmpty(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestListingValidate(t *testing.T) {
	valid := Listing{Chapter: "1", Description: "test", ListingID: "1-1", Status: "desired"}

	tests := []struct {
		name    string
		mutate  func(l *Listing)
		wantErr string
	}{
		{name: "all fields set", mutate: func(l *Listing) {}},
		{name: "empty chapter", mutate: func(l *Listing) { l.Chapter = "" }, wantErr: "empty chapter"},
		{name: "empty description", mutate: func(l *Listing) { l.Description = "" }, wantErr: "empty description"},
		{name: "empty listing", mutate: func(l *Listing) { l.ListingID = "" }, wantErr: "empty listing"},
		{name: "empty status", mutate: func(l *Listing) { l.Status = "" }, wantErr: "empty status"},
		{name: "zero value reports chapter first", mutate: func(l *Listing) { *l = Listing{} }, wantErr: "empty chapter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid
			tt.mutate(&l)

			err := l.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Expected error %q, got %v", tt.wantErr, err)
			}
		})
	}
}
