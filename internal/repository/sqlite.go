package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"slot-auction/internal/auctionerrors"
	model "slot-auction/internal/models"

	_ "modernc.org/sqlite"
)

// SQLiteRepo is a SQLite-backed implementation of AuctionDB. Bid slot entries
// and result weight breakdowns are stored as JSON columns.
type SQLiteRepo struct {
	db *sql.DB
}

// NewSQLiteRepo opens or creates the SQLite database at dbPath.
// An empty dbPath defaults to $TMPDIR/slot-auction/data.db.
func NewSQLiteRepo(dbPath string) (*SQLiteRepo, error) {
	if dbPath == "" {
		dbPath = filepath.Join(os.TempDir(), "slot-auction", "data.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1) // single writer; WAL allows concurrent readers
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON`); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	r := &SQLiteRepo{db: db}
	if err := r.createTables(); err != nil {
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return r, nil
}

// Close closes the underlying database connection.
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepo) createTables() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			image       TEXT,
			description TEXT,
			amount      REAL NOT NULL,
			status      TEXT NOT NULL,
			has_slots   INTEGER NOT NULL DEFAULT 0,
			has_bids    INTEGER NOT NULL DEFAULT 0,
			created_at  INTEGER NOT NULL,
			updated_at  INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS slots (
			id         TEXT PRIMARY KEY,
			product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			bid_price  REAL NOT NULL,
			slot_count INTEGER NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS bids (
			id                TEXT PRIMARY KEY,
			product_id        TEXT NOT NULL,
			user_id           TEXT NOT NULL,
			slots             TEXT NOT NULL DEFAULT '[]',
			total_amount      REAL NOT NULL,
			status            TEXT NOT NULL,
			is_withdrawable   INTEGER NOT NULL DEFAULT 1,
			withdrawal_time   INTEGER,
			withdrawal_reason TEXT,
			created_at        INTEGER NOT NULL,
			updated_at        INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			id             TEXT PRIMARY KEY,
			product_id     TEXT NOT NULL UNIQUE,
			winner_id      TEXT NOT NULL,
			winning_bid_id TEXT NOT NULL,
			weight_calc    TEXT NOT NULL DEFAULT '{}',
			total_tickets  INTEGER NOT NULL,
			declared_at    INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_slots_product ON slots(product_id)`,
		`CREATE INDEX IF NOT EXISTS idx_bids_product_status ON bids(product_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_bids_user ON bids(user_id)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

const productCols = `id, name, image, description, amount, status, has_slots, has_bids, created_at, updated_at`

// CreateProduct stores a new product
func (r *SQLiteRepo) CreateProduct(p model.Product) error {
	_, err := r.db.Exec(`
		INSERT INTO products (`+productCols+`)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		p.ProductID, p.Name, p.Image, p.Description, p.Amount, string(p.Status),
		boolToInt(p.HasSlots), boolToInt(p.HasBids),
		p.CreatedAt.UnixNano(), p.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert product %s: %v: %w", p.ProductID, err, auctionerrors.ErrDatabase)
	}
	return nil
}

// GetProduct returns the product with the given id
func (r *SQLiteRepo) GetProduct(productID string) (model.Product, error) {
	row := r.db.QueryRow(`SELECT `+productCols+` FROM products WHERE id = ?`, productID)
	p, err := scanProduct(row.Scan)
	if err == sql.ErrNoRows {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("get product %s: %v: %w", productID, err, auctionerrors.ErrDatabase)
	}
	return p, nil
}

// ListProducts returns all products ordered by creation time
func (r *SQLiteRepo) ListProducts() ([]model.Product, error) {
	rows, err := r.db.Query(`SELECT ` + productCols + ` FROM products ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query products: %v: %w", err, auctionerrors.ErrDatabase)
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan product: %v: %w", err, auctionerrors.ErrDatabase)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// UpdateProduct replaces an existing product document
func (r *SQLiteRepo) UpdateProduct(p model.Product) error {
	res, err := r.db.Exec(`
		UPDATE products SET
			name=?, image=?, description=?, amount=?, status=?, has_slots=?, has_bids=?, updated_at=?
		WHERE id=?`,
		p.Name, p.Image, p.Description, p.Amount, string(p.Status),
		boolToInt(p.HasSlots), boolToInt(p.HasBids), p.UpdatedAt.UnixNano(),
		p.ProductID,
	)
	if err != nil {
		return fmt.Errorf("update product %s: %v: %w", p.ProductID, err, auctionerrors.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update product %s: %w", p.ProductID, auctionerrors.ErrProductNotFound)
	}
	return nil
}

// DeleteProduct removes a product; its slots go with it via the cascade
func (r *SQLiteRepo) DeleteProduct(productID string) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, productID)
	if err != nil {
		return fmt.Errorf("delete product %s: %v: %w", productID, err, auctionerrors.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	return nil
}

// SaveSlot inserts or replaces a slot definition
func (r *SQLiteRepo) SaveSlot(s model.Slot) error {
	_, err := r.db.Exec(`
		INSERT OR REPLACE INTO slots (id, product_id, bid_price, slot_count, created_at, updated_at)
		VALUES (?,?,?,?,?,?)`,
		s.SlotID, s.ProductID, s.BidPrice, s.SlotCount,
		s.CreatedAt.UnixNano(), s.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("save slot %s: %v: %w", s.SlotID, err, auctionerrors.ErrDatabase)
	}
	return nil
}

// GetSlot returns the slot with the given id
func (r *SQLiteRepo) GetSlot(slotID string) (model.Slot, error) {
	row := r.db.QueryRow(`
		SELECT id, product_id, bid_price, slot_count, created_at, updated_at
		FROM slots WHERE id = ?`, slotID)
	s, err := scanSlot(row.Scan)
	if err == sql.ErrNoRows {
		return model.Slot{}, fmt.Errorf("get slot %s: %w", slotID, auctionerrors.ErrSlotNotFound)
	}
	if err != nil {
		return model.Slot{}, fmt.Errorf("get slot %s: %v: %w", slotID, err, auctionerrors.ErrDatabase)
	}
	return s, nil
}

// GetSlotsByProduct returns a product's slots ordered by bid price
func (r *SQLiteRepo) GetSlotsByProduct(productID string) ([]model.Slot, error) {
	rows, err := r.db.Query(`
		SELECT id, product_id, bid_price, slot_count, created_at, updated_at
		FROM slots WHERE product_id = ? ORDER BY bid_price, id`, productID)
	if err != nil {
		return nil, fmt.Errorf("query slots for product %s: %v: %w", productID, err, auctionerrors.ErrDatabase)
	}
	defer rows.Close()

	slots := make([]model.Slot, 0)
	for rows.Next() {
		s, err := scanSlot(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %v: %w", err, auctionerrors.ErrDatabase)
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

// DeleteSlots removes the given slot definitions
func (r *SQLiteRepo) DeleteSlots(slotIDs []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin delete slots: %v: %w", err, auctionerrors.ErrDatabase)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, id := range slotIDs {
		if _, err := tx.Exec(`DELETE FROM slots WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete slot %s: %v: %w", id, err, auctionerrors.ErrDatabase)
		}
	}
	return tx.Commit()
}

// SaveBid inserts or replaces a bid document
func (r *SQLiteRepo) SaveBid(b model.Bid) error {
	slotsJSON, err := json.Marshal(b.Slots)
	if err != nil {
		return fmt.Errorf("marshal bid slots: %v: %w", err, auctionerrors.ErrDatabase)
	}
	var withdrawalTime any
	if b.WithdrawalTime != nil {
		withdrawalTime = b.WithdrawalTime.UnixNano()
	}
	_, err = r.db.Exec(`
		INSERT OR REPLACE INTO bids
			(id, product_id, user_id, slots, total_amount, status, is_withdrawable,
			 withdrawal_time, withdrawal_reason, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		b.BidID, b.ProductID, b.UserID, string(slotsJSON), b.TotalAmount, string(b.Status),
		boolToInt(b.IsWithdrawable), withdrawalTime, b.WithdrawalReason,
		b.CreatedAt.UnixNano(), b.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("save bid %s: %v: %w", b.BidID, err, auctionerrors.ErrDatabase)
	}
	return nil
}

const bidCols = `id, product_id, user_id, slots, total_amount, status, is_withdrawable,
	withdrawal_time, withdrawal_reason, created_at, updated_at`

// GetBid returns the bid with the given id
func (r *SQLiteRepo) GetBid(bidID string) (model.Bid, error) {
	row := r.db.QueryRow(`SELECT `+bidCols+` FROM bids WHERE id = ?`, bidID)
	b, err := scanBid(row.Scan)
	if err == sql.ErrNoRows {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid %s: %v: %w", bidID, err, auctionerrors.ErrDatabase)
	}
	return b, nil
}

// GetBidsByProduct returns a product's bids with the given status, ordered by
// creation time. An empty status returns bids in every status.
func (r *SQLiteRepo) GetBidsByProduct(productID string, status model.BidStatus) ([]model.Bid, error) {
	query := `SELECT ` + bidCols + ` FROM bids WHERE product_id = ?`
	args := []any{productID}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bids for product %s: %v: %w", productID, err, auctionerrors.ErrDatabase)
	}
	defer rows.Close()

	bids := make([]model.Bid, 0)
	for rows.Next() {
		b, err := scanBid(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan bid: %v: %w", err, auctionerrors.ErrDatabase)
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

// GetActiveBidByUser returns the user's active bid on a product, if any
func (r *SQLiteRepo) GetActiveBidByUser(productID, userID string) (model.Bid, error) {
	row := r.db.QueryRow(`
		SELECT `+bidCols+` FROM bids
		WHERE product_id = ? AND user_id = ? AND status = ?`,
		productID, userID, string(model.BidActive))
	b, err := scanBid(row.Scan)
	if err == sql.ErrNoRows {
		return model.Bid{}, fmt.Errorf("active bid for user %s on product %s: %w", userID, productID, auctionerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("active bid for user %s: %v: %w", userID, err, auctionerrors.ErrDatabase)
	}
	return b, nil
}

// CountBidsByUser returns the user's all-time bid count across all products
func (r *SQLiteRepo) CountBidsByUser(userID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM bids WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count bids for user %s: %v: %w", userID, err, auctionerrors.ErrDatabase)
	}
	return count, nil
}

// SetWithdrawableByProduct flips the withdrawable flag on all of a product's
// active bids
func (r *SQLiteRepo) SetWithdrawableByProduct(productID string, withdrawable bool) error {
	_, err := r.db.Exec(`
		UPDATE bids SET is_withdrawable = ? WHERE product_id = ? AND status = ?`,
		boolToInt(withdrawable), productID, string(model.BidActive))
	if err != nil {
		return fmt.Errorf("set withdrawable for product %s: %v: %w", productID, err, auctionerrors.ErrDatabase)
	}
	return nil
}

// LockBidsByProduct freezes all of a product's active bids
func (r *SQLiteRepo) LockBidsByProduct(productID string) error {
	_, err := r.db.Exec(`
		UPDATE bids SET status = ? WHERE product_id = ? AND status = ?`,
		string(model.BidLocked), productID, string(model.BidActive))
	if err != nil {
		return fmt.Errorf("lock bids for product %s: %v: %w", productID, err, auctionerrors.ErrDatabase)
	}
	return nil
}

// SaveResult stores a product's lottery result. The unique index on
// product_id rejects a second save.
func (r *SQLiteRepo) SaveResult(res model.Result) error {
	weightJSON, err := json.Marshal(res.WeightCalculation)
	if err != nil {
		return fmt.Errorf("marshal weight calculation: %v: %w", err, auctionerrors.ErrDatabase)
	}
	_, err = r.db.Exec(`
		INSERT INTO results (id, product_id, winner_id, winning_bid_id, weight_calc, total_tickets, declared_at)
		VALUES (?,?,?,?,?,?,?)`,
		res.ResultID, res.ProductID, res.WinnerID, res.WinningBidID,
		string(weightJSON), res.TotalTickets, res.DeclaredAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("save result for product %s: %w", res.ProductID, auctionerrors.ErrAlreadyDeclared)
	}
	return nil
}

// GetResultByProduct returns the result declared for a product
func (r *SQLiteRepo) GetResultByProduct(productID string) (model.Result, error) {
	row := r.db.QueryRow(`
		SELECT id, product_id, winner_id, winning_bid_id, weight_calc, total_tickets, declared_at
		FROM results WHERE product_id = ?`, productID)

	var res model.Result
	var weightJSON string
	var declaredAtNano int64
	err := row.Scan(&res.ResultID, &res.ProductID, &res.WinnerID, &res.WinningBidID,
		&weightJSON, &res.TotalTickets, &declaredAtNano)
	if err == sql.ErrNoRows {
		return model.Result{}, fmt.Errorf("get result for product %s: %w", productID, auctionerrors.ErrResultNotFound)
	}
	if err != nil {
		return model.Result{}, fmt.Errorf("get result for product %s: %v: %w", productID, err, auctionerrors.ErrDatabase)
	}
	if err := json.Unmarshal([]byte(weightJSON), &res.WeightCalculation); err != nil {
		return model.Result{}, fmt.Errorf("unmarshal weight calculation: %v: %w", err, auctionerrors.ErrDatabase)
	}
	res.DeclaredAt = time.Unix(0, declaredAtNano)
	return res, nil
}

// CountWinsByUser returns how many results the user has won
func (r *SQLiteRepo) CountWinsByUser(userID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM results WHERE winner_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count wins for user %s: %v: %w", userID, err, auctionerrors.ErrDatabase)
	}
	return count, nil
}

func scanProduct(scan func(...any) error) (model.Product, error) {
	var p model.Product
	var status string
	var hasSlots, hasBids int
	var createdAtNano, updatedAtNano int64
	err := scan(&p.ProductID, &p.Name, &p.Image, &p.Description, &p.Amount,
		&status, &hasSlots, &hasBids, &createdAtNano, &updatedAtNano)
	if err != nil {
		return model.Product{}, err
	}
	p.Status = model.ProductStatus(status)
	p.HasSlots = hasSlots != 0
	p.HasBids = hasBids != 0
	p.CreatedAt = time.Unix(0, createdAtNano)
	p.UpdatedAt = time.Unix(0, updatedAtNano)
	return p, nil
}

func scanSlot(scan func(...any) error) (model.Slot, error) {
	var s model.Slot
	var createdAtNano, updatedAtNano int64
	err := scan(&s.SlotID, &s.ProductID, &s.BidPrice, &s.SlotCount, &createdAtNano, &updatedAtNano)
	if err != nil {
		return model.Slot{}, err
	}
	s.CreatedAt = time.Unix(0, createdAtNano)
	s.UpdatedAt = time.Unix(0, updatedAtNano)
	return s, nil
}

func scanBid(scan func(...any) error) (model.Bid, error) {
	var b model.Bid
	var slotsJSON, status string
	var withdrawable int
	var withdrawalReason sql.NullString
	var withdrawalTimeNano sql.NullInt64
	var createdAtNano, updatedAtNano int64
	err := scan(&b.BidID, &b.ProductID, &b.UserID, &slotsJSON, &b.TotalAmount, &status,
		&withdrawable, &withdrawalTimeNano, &withdrawalReason, &createdAtNano, &updatedAtNano)
	if err != nil {
		return model.Bid{}, err
	}
	if err := json.Unmarshal([]byte(slotsJSON), &b.Slots); err != nil {
		return model.Bid{}, err
	}
	b.Status = model.BidStatus(status)
	b.IsWithdrawable = withdrawable != 0
	if withdrawalTimeNano.Valid {
		t := time.Unix(0, withdrawalTimeNano.Int64)
		b.WithdrawalTime = &t
	}
	b.WithdrawalReason = withdrawalReason.String
	b.CreatedAt = time.Unix(0, createdAtNano)
	b.UpdatedAt = time.Unix(0, updatedAtNano)
	return b, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
