package main

import "testing"

func TestParseBoard(t *testing.T) {
	const classic = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	b, err := parseBoard(classic)
	if err != nil {
		t.Fatalf("parseBoard: %v", err)
	}
	if b.Values[0][0] != 5 || !b.Fixed[0][0] {
		t.Fatalf("A1 = %d fixed=%v", b.Values[0][0], b.Fixed[0][0])
	}
	if b.Values[0][2] != 0 || b.Fixed[0][2] {
		t.Fatal("A3 should be blank")
	}
	if got := b.Givens(); got != 30 {
		t.Fatalf("givens = %d, want 30", got)
	}
}

func TestParseBoardDotsAndWhitespace(t *testing.T) {
	var sb []byte
	for i := 0; i < 81; i++ {
		sb = append(sb, '.')
		if i%9 == 8 {
			sb = append(sb, '\n')
		}
	}
	b, err := parseBoard(string(sb))
	if err != nil {
		t.Fatalf("parseBoard: %v", err)
	}
	if b.Givens() != 0 {
		t.Fatal("all-dots board should be empty")
	}
}

func TestParseBoardRejectsShortInput(t *testing.T) {
	if _, err := parseBoard("123"); err == nil {
		t.Fatal("expected length error")
	}
	if _, err := parseBoard("x"); err == nil {
		t.Fatal("expected character error")
	}
}
