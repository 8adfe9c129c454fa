package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/anand-jaiswal-IN/youtube-clone/connect"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// sqlRecorder captures every statement gorm generates so the tests can
// assert on the SQL without a database connection
type sqlRecorder struct {
	mu    sync.Mutex
	stmts []string
}

func (r *sqlRecorder) LogMode(gormlogger.LogLevel) gormlogger.Interface { return r }

func (r *sqlRecorder) Info(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Warn(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.mu.Lock()
	r.stmts = append(r.stmts, sql)
	r.mu.Unlock()
}

func dryRunConn(t *testing.T, rec *sqlRecorder) *connect.Connector {
	t.Helper()

	db, err := gorm.Open(postgres.Open("host=localhost user=test dbname=test"), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 rec,
	})
	if err != nil {
		t.Fatalf("failed to open the dry run database : %v", err)
	}

	return &connect.Connector{DB: db}
}

func TestRecordViewInsertIgnoresDuplicatePairs(t *testing.T) {
	t.Parallel()

	rec := &sqlRecorder{}
	videoS := Video{Conn: dryRunConn(t, rec)}

	videoID := uuid.New()
	userID := uuid.New()

	if err := videoS.RecordView(context.Background(), videoID, userID); err != nil {
		t.Fatalf("RecordView() error = %v", err)
	}
	if err := videoS.RecordView(context.Background(), videoID, userID); err != nil {
		t.Fatalf("RecordView() repeat error = %v", err)
	}

	if got := len(rec.stmts); got != 2 {
		t.Fatalf("got %d statements, want 2", got)
	}

	for _, stmt := range rec.stmts {
		if !strings.Contains(stmt, `"video_views"`) {
			t.Fatalf("statement does not target video_views : %s", stmt)
		}
		if !strings.Contains(stmt, "ON CONFLICT DO NOTHING") {
			t.Fatalf("statement is missing ON CONFLICT DO NOTHING : %s", stmt)
		}
	}
}
