package app

import (
	"go-leave/internal/leave"
	"go-leave/internal/ledger"

	"gorm.io/gorm"
)

// The outbox table is written with raw SQL, so it is created the same
// way instead of through AutoMigrate.
const outboxTableDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id            UUID PRIMARY KEY,
	request_id    TEXT,
	aggregate_type VARCHAR(50)  NOT NULL,
	aggregate_id  UUID          NOT NULL,
	event_type    VARCHAR(100)  NOT NULL,
	topic         VARCHAR(200)  NOT NULL,
	payload       JSONB         NOT NULL,
	status        VARCHAR(20)   NOT NULL DEFAULT 'pending',
	retry_count   INT           NOT NULL DEFAULT 0,
	error_message TEXT,
	next_retry_at TIMESTAMPTZ,
	processed_at  TIMESTAMPTZ,
	created_at    TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ   NOT NULL DEFAULT NOW()
)
`

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&leave.LeaveRequest{},
		&leave.LeaveAction{},
		&ledger.LeaveBalance{},
	); err != nil {
		return err
	}
	return db.Exec(outboxTableDDL).Error
}
