package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return db, mock
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

var parcelColumns = []string{
	"parcel_id", "user_id", "pickup_location", "drop_location", "deliverytype", "status", "amount", "created_at",
}

func TestUserRepository_DeleteCascade_Commits(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM parcels WHERE user_id = $1")).
		WithArgs("U-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs("U-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := NewUserRepository(db).DeleteCascade(context.Background(), "U-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.UserID != "U-1" || res.ParcelsRemoved != 3 {
		t.Errorf("unexpected result: %+v", res)
	}
	expectationsMet(t, mock)
}

func TestUserRepository_DeleteCascade_RollsBackMissingUser(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM parcels WHERE user_id = $1")).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := NewUserRepository(db).DeleteCascade(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestUserRepository_DeleteCascade_RollsBackOnParcelFailure(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("deadlock detected")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM parcels WHERE user_id = $1")).
		WithArgs("U-1").
		WillReturnError(boom)
	mock.ExpectRollback()

	_, err := NewUserRepository(db).DeleteCascade(context.Background(), "U-1")
	if !errors.Is(err, boom) {
		t.Fatalf("expected the driver error, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestBookingRepository_List_PendingIncludesUnknownStatuses(t *testing.T) {
	db, mock := newMockDB(t)
	created := time.Date(2024, 1, 9, 8, 0, 0, 0, time.UTC)

	args := []driver.Value{"pending"}
	for _, s := range domain.StatusesExcept(domain.StatusPending) {
		args = append(args, s)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`status = $1 OR status NOT IN ($2,$3,$4,$5,$6,$7,$8,$9,$10)`)).
		WithArgs(args...).
		WillReturnRows(sqlmock.NewRows(parcelColumns).
			AddRow("P-2", "U-1", "A", "B", "normal", "shipped", "10.00", created).
			AddRow("P-1", "U-1", "A", "B", "normal", "pending", "20.00", created))

	bookings, err := NewBookingRepository(db).List(context.Background(), domain.BookingFilter{Status: "pending"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}
	if bookings[0].ID != "P-2" || bookings[0].Status != domain.StatusPending {
		t.Errorf("expected the stored unknown status to be listed as pending, got %+v", bookings[0])
	}
	expectationsMet(t, mock)
}

func TestBookingRepository_List_KnownStatusIsExact(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE status = $1 ORDER BY created_at DESC`)).
		WithArgs("in-transit").
		WillReturnRows(sqlmock.NewRows(parcelColumns))

	bookings, err := NewBookingRepository(db).List(context.Background(), domain.BookingFilter{Status: "in-transit"})
	if err != nil || len(bookings) != 0 {
		t.Fatalf("expected no bookings and no error, got %v %v", bookings, err)
	}
	expectationsMet(t, mock)
}

func TestBookingRepository_List_UnknownFilterMatchesNothing(t *testing.T) {
	db, mock := newMockDB(t)

	bookings, err := NewBookingRepository(db).List(context.Background(), domain.BookingFilter{Status: "shipped"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bookings == nil || len(bookings) != 0 {
		t.Errorf("expected an empty, non-nil list, got %v", bookings)
	}
	expectationsMet(t, mock)
}

func TestBookingRepository_List_EscapesSearch(t *testing.T) {
	db, mock := newMockDB(t)

	like := `%50\%%`
	mock.ExpectQuery(regexp.QuoteMeta(`parcel_id ILIKE $1 OR user_id ILIKE $2 OR pickup_location ILIKE $3 OR drop_location ILIKE $4`)).
		WithArgs(like, like, like, like).
		WillReturnRows(sqlmock.NewRows(parcelColumns))

	if _, err := NewBookingRepository(db).List(context.Background(), domain.BookingFilter{Search: "50%"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestBookingRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "parcels" WHERE parcel_id = $1`)).
		WillReturnRows(sqlmock.NewRows(parcelColumns))

	_, err := NewBookingRepository(db).FindByID(context.Background(), "P-404")
	if !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestTicketRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM support_requests WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewTicketRepository(db).Delete(context.Background(), 7)
	if !errors.Is(err, domain.ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestPaymentRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "payments" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewPaymentRepository(db).FindByID(context.Background(), 77)
	if !errors.Is(err, domain.ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestDashboardRepository_DailyRevenue_InclusiveDateBounds(t *testing.T) {
	db, mock := newMockDB(t)
	from := time.Date(2024, 1, 8, 15, 30, 0, 0, time.UTC)
	to := time.Date(2024, 1, 14, 23, 59, 0, 0, time.UTC)
	day := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE DATE(created_at) BETWEEN $1::date AND $2::date`)).
		WithArgs("2024-01-08", "2024-01-14").
		WillReturnRows(sqlmock.NewRows([]string{"day", "revenue"}).AddRow(day, "100.50"))

	rows, err := NewDashboardRepository(db).DailyRevenue(context.Background(), from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || !rows[0].Day.Equal(day) || !rows[0].Revenue.Equal(decimal.RequireFromString("100.50")) {
		t.Errorf("unexpected rows: %+v", rows)
	}
	expectationsMet(t, mock)
}

func TestDashboardRepository_SumRevenueSince(t *testing.T) {
	db, mock := newMockDB(t)
	since := time.Date(2023, 12, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount), 0) AS total FROM parcels WHERE created_at >= $1`)).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("1234.50"))

	total, err := NewDashboardRepository(db).SumRevenueSince(context.Background(), since)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("1234.50")) {
		t.Errorf("unexpected total: %s", total)
	}
	expectationsMet(t, mock)
}

func TestDashboardRepository_CountOpenTickets_IgnoresCase(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "support_requests" WHERE LOWER(status) IN ($1,$2)`)).
		WithArgs("open", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := NewDashboardRepository(db).CountOpenTickets(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3, got %d", n)
	}
	expectationsMet(t, mock)
}

func TestDashboardRepository_CountBookingsByStatus(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "parcels" WHERE status = $1`)).
		WithArgs("in-transit").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	n, err := NewDashboardRepository(db).CountBookingsByStatus(context.Background(), domain.StatusInTransit)
	if err != nil || n != 5 {
		t.Fatalf("expected 5, got %d (%v)", n, err)
	}
	expectationsMet(t, mock)
}
