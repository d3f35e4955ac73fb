package metadata

import (
	"testing"
	"time"
)

func fixedCreation(t time.Time) func(string) (time.Time, bool) {
	return func(string) (time.Time, bool) { return t, true }
}

func noCreation(string) (time.Time, bool) { return time.Time{}, false }

func TestInferSubjectAndDate(t *testing.T) {
	e := NewEngine(DefaultProfile(), noCreation, nil)
	m := e.Infer("Betreff: Jahresabrechnung\n03.04.2023", "/in/scan.pdf")

	if !m.HasSubject || m.Subject != "Jahresabrechnung" {
		t.Errorf("subject = %q (has=%v), want Jahresabrechnung", m.Subject, m.HasSubject)
	}
	if !m.HasDate || m.Date.Format("2006-01-02") != "2023-04-03" {
		t.Errorf("date = %v (has=%v), want 2023-04-03", m.Date, m.HasDate)
	}
}

func TestInferStripsCarriageReturns(t *testing.T) {
	e := NewEngine(DefaultProfile(), noCreation, nil)
	m := e.Infer("Betreff: Mahnung\r\n01.12.2024\r\n", "/in/scan.pdf")

	if m.Subject != "Mahnung" {
		t.Errorf("subject = %q, want Mahnung", m.Subject)
	}
	if m.RawText != "Betreff: Mahnung\n01.12.2024\n" {
		t.Errorf("raw text not normalized: %q", m.RawText)
	}
}

func TestInferFallsBackToCreationTimestamp(t *testing.T) {
	created := time.Date(2022, 7, 1, 10, 0, 0, 0, time.UTC)
	e := NewEngine(DefaultProfile(), fixedCreation(created), nil)
	m := e.Infer("Betreff: Vertrag\nkein Datum im Text", "/in/scan.pdf")

	if !m.HasDate || !m.Date.Equal(created) {
		t.Errorf("date = %v (has=%v), want creation time %v", m.Date, m.HasDate, created)
	}
}

func TestInferRepresentsTotalAbsence(t *testing.T) {
	e := NewEngine(DefaultProfile(), noCreation, nil)
	m := e.Infer("", "/in/scan.pdf")

	if m.HasSubject || m.HasDate {
		t.Errorf("expected neither subject nor date, got %+v", m)
	}
}

func TestInferContentDateBeatsCreationTimestamp(t *testing.T) {
	created := time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)
	e := NewEngine(DefaultProfile(), fixedCreation(created), nil)
	m := e.Infer("05.03.2023", "/in/scan.pdf")

	if !m.HasDate || m.Date.Format("2006-01-02") != "2023-03-05" {
		t.Errorf("date = %v, want content date 2023-03-05", m.Date)
	}
}
