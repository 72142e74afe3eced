package models

import (
	"encoding/json"
	"testing"
)

func TestMoneyUnmarshalAcceptsNumberAndString(t *testing.T) {
	var payload struct {
		A Money `json:"a"`
		B Money `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a":1500,"b":"60.505"}`), &payload); err != nil {
		t.Fatalf("unmarshal money failed: %v", err)
	}
	if payload.A.String() != "1500.00" {
		t.Fatalf("want 1500.00 got %s", payload.A.String())
	}
	if payload.B.String() != "60.51" {
		t.Fatalf("want 60.51 got %s", payload.B.String())
	}
}

func TestMoneyMarshalFixedScale(t *testing.T) {
	raw, err := json.Marshal(MustMoney("1410"))
	if err != nil {
		t.Fatalf("marshal money failed: %v", err)
	}
	if string(raw) != `"1410.00"` {
		t.Fatalf("want \"1410.00\" got %s", string(raw))
	}
}
