package limiter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/************ fake pgx ************/
type fakeRow struct{ scan func(dest ...any) error }

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

type fakePool struct {
	qrErr         error
	qrBlockedTill *time.Time
	qrUpdatedAt   time.Time
	qrFailsRet    int

	lastExecSQL string
	execErr     error
}

func (f *fakePool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastExecSQL = sql
	return pgconn.CommandTag{}, f.execErr
}

func (f *fakePool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	switch {
	case strings.Contains(sql, "SELECT blocked_until"):
		return fakeRow{scan: func(dest ...any) error {
			if f.qrErr != nil {
				return f.qrErr
			}
			if f.qrBlockedTill != nil {
				*(dest[0].(*time.Time)) = *f.qrBlockedTill
			} else {
				*(dest[0].(*time.Time)) = time.Time{} // 'epoch'
			}
			*(dest[1].(*time.Time)) = f.qrUpdatedAt
			return nil
		}}
	case strings.Contains(sql, "RETURNING fail_count"):
		return fakeRow{scan: func(dest ...any) error {
			if f.qrErr != nil {
				return f.qrErr
			}
			*(dest[0].(*int)) = f.qrFailsRet
			return nil
		}}
	default:
		return fakeRow{scan: func(dest ...any) error { return errors.New("unexpected query") }}
	}
}

func TestPG_Allow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	key := HashClient("term-1")

	// No row yet: allowed.
	f := &fakePool{qrErr: pgx.ErrNoRows}
	l := NewPGWithQuerier(f, 15*time.Minute, 3, 15*time.Minute)
	ok, _, err := l.Allow(ctx, "a@b.com", key)
	if err != nil || !ok {
		t.Fatalf("Allow(no row) = %v, %v; want true, nil", ok, err)
	}

	// Block in the future: denied with retry-after.
	till := time.Now().Add(10 * time.Minute)
	f = &fakePool{qrBlockedTill: &till}
	l = NewPGWithQuerier(f, 15*time.Minute, 3, 15*time.Minute)
	ok, retry, err := l.Allow(ctx, "a@b.com", key)
	if err != nil || ok || retry <= 0 {
		t.Fatalf("Allow(blocked) = %v, %v, %v; want false, >0, nil", ok, retry, err)
	}

	// Expired block: allowed again.
	past := time.Now().Add(-time.Minute)
	f = &fakePool{qrBlockedTill: &past}
	l = NewPGWithQuerier(f, 15*time.Minute, 3, 15*time.Minute)
	ok, _, err = l.Allow(ctx, "a@b.com", key)
	if err != nil || !ok {
		t.Fatalf("Allow(expired block) = %v, %v; want true, nil", ok, err)
	}
}

func TestPG_Failure_BlocksAtThreshold(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	key := HashClient("term-1")

	f := &fakePool{qrFailsRet: 2}
	l := NewPGWithQuerier(f, 15*time.Minute, 3, 15*time.Minute)
	blocked, _, err := l.Failure(ctx, "a@b.com", key)
	if err != nil || blocked {
		t.Fatalf("Failure(below threshold) = %v, %v; want false, nil", blocked, err)
	}

	f = &fakePool{qrFailsRet: 3}
	l = NewPGWithQuerier(f, 15*time.Minute, 3, 15*time.Minute)
	blocked, retry, err := l.Failure(ctx, "a@b.com", key)
	if err != nil || !blocked || retry != 15*time.Minute {
		t.Fatalf("Failure(threshold) = %v, %v, %v; want true, 15m, nil", blocked, retry, err)
	}
	if !strings.Contains(f.lastExecSQL, "SET blocked_until") {
		t.Fatalf("expected block update, got %q", f.lastExecSQL)
	}
}

func TestHashClient_Stable(t *testing.T) {
	t.Parallel()
	a := HashClient("host-a")
	b := HashClient("host-a")
	c := HashClient("host-b")
	if string(a) != string(b) {
		t.Fatalf("HashClient not stable")
	}
	if string(a) == string(c) {
		t.Fatalf("HashClient collides for distinct inputs")
	}
}
