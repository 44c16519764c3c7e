package services

import (
	"testing"

	"appraisal/internal/models"
	"appraisal/internal/testutil"
)

func TestAuditLog(t *testing.T) {
	t.Run("records_entry", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)

		svc.Log(AuditRunValuation, "valuation", "0190c6b8-0000-7000-8000-000000000001", "10.0.0.1",
			map[string]any{"method": "residual"})

		var entry models.AuditLog
		if err := db.First(&entry).Error; err != nil {
			t.Fatalf("expected audit entry: %v", err)
		}
		if entry.Action != AuditRunValuation || entry.ResourceType != "valuation" {
			t.Errorf("unexpected entry %+v", entry)
		}
		if entry.Changes != `{"method":"residual"}` {
			t.Errorf("expected JSON changes, got %s", entry.Changes)
		}
	})

	t.Run("nil_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		NewAuditService(db).Log(AuditRunBatch, "batch", "", "", nil)

		var entry models.AuditLog
		if err := db.First(&entry).Error; err != nil {
			t.Fatalf("expected audit entry: %v", err)
		}
		if entry.Changes != "" {
			t.Errorf("expected empty changes, got %s", entry.Changes)
		}
	})

	t.Run("unmarshalable_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		NewAuditService(db).Log(AuditRunValuation, "valuation", "x", "", map[string]any{"fn": func() {}})

		var entry models.AuditLog
		if err := db.First(&entry).Error; err != nil {
			t.Fatalf("expected audit entry: %v", err)
		}
		if entry.Changes != "{}" {
			t.Errorf("expected fallback {}, got %s", entry.Changes)
		}
	})
}
