package jcamp

import (
	"errors"
	"strings"
	"testing"
)

func TestDocumentSetPreservesUntouchedLines(t *testing.T) {
	doc := ParseDocument(sampleFile)
	doc.Set("ORIGIN", "Other Lab")

	got := doc.String()
	want := strings.Replace(sampleFile, "##ORIGIN=Example Lab", "##ORIGIN=Other Lab", 1)
	if got != want {
		t.Fatalf("unexpected output:\ngot  %q\nwant %q", got, want)
	}
}

func TestDocumentEditsDoNotAlias(t *testing.T) {
	original := ParseDocument(sampleFile)
	edited := original
	edited.Set("TITLE", "changed")
	if title, _ := original.Lookup("TITLE"); title != "Ethyl acetate" {
		t.Fatalf("original mutated: title %q", title)
	}
}

func TestDocumentAddAndRemove(t *testing.T) {
	doc := ParseDocument(sampleFile)
	if err := doc.Add("OWNER", "PUBLIC DOMAIN"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := doc.Add("owner", "again"); !errors.Is(err, ErrLabelExists) {
		t.Fatalf("expected ErrLabelExists, got %v", err)
	}
	if !doc.Remove("Names") {
		t.Fatal("Remove should report the removed label")
	}
	if doc.Remove("NAMES") {
		t.Fatal("second Remove should report false")
	}
	out := doc.String()
	if strings.Contains(out, "acetic ether") {
		t.Fatalf("continuation line survived removal: %q", out)
	}
	if !strings.Contains(out, "##OWNER=PUBLIC DOMAIN") {
		t.Fatalf("added label missing: %q", out)
	}
}

func TestApplyGroupEdits(t *testing.T) {
	doc := ParseDocument(sampleFile)
	doc.ApplyGroupEdits([]Edit{
		{Key: "OWNER", Value: "PUBLIC DOMAIN"},
		{Key: "origin", Value: "Group Lab"},
		{Key: "CITATION", Value: "  "},
		{Key: "DATE", Value: "26/10/19"},
	})

	if v, _ := doc.Lookup("ORIGIN"); v != "Group Lab" {
		t.Fatalf("unexpected ORIGIN: %q", v)
	}
	if _, ok := doc.Lookup("CITATION"); ok {
		t.Fatal("blank edit should be ignored")
	}
	meta := doc.Metadata()
	n := len(meta)
	if meta[n-2].Key != "OWNER" || meta[n-1].Key != "DATE" {
		t.Fatalf("new labels should be appended in order, got %q then %q", meta[n-2].Key, meta[n-1].Key)
	}
	if !strings.Contains(doc.String(), "##DATE=26/10/19\n##XYDATA=") {
		t.Fatalf("appended labels should precede the data block: %q", doc.String())
	}
}

func TestAppendAuditTrail(t *testing.T) {
	doc := ParseDocument(sampleFile)
	doc.AppendAuditTrail("edited ORIGIN")
	doc.AppendAuditTrail("", "expanded to AFFN")
	if got := doc.AuditTrail(); got != "edited ORIGIN\nexpanded to AFFN" {
		t.Fatalf("unexpected audit trail: %q", got)
	}
	if !strings.Contains(doc.String(), "##AUDIT TRAIL=edited ORIGIN\nexpanded to AFFN\n") {
		t.Fatalf("audit trail not serialized: %q", doc.String())
	}
}

func TestParseEdit(t *testing.T) {
	edit, err := ParseEdit(" OWNER = PUBLIC DOMAIN ")
	if err != nil {
		t.Fatalf("ParseEdit failed: %v", err)
	}
	if edit.Key != "OWNER" || edit.Value != "PUBLIC DOMAIN" {
		t.Fatalf("unexpected edit: %+v", edit)
	}
	if _, err := ParseEdit("novalue"); err == nil {
		t.Fatal("expected error for missing =")
	}
}
