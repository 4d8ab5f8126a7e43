package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"basket-insights-go/internal/types"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Open accepts mysql:// or mariadb:// URLs as well as native driver DSNs.
func Open(dsn string) (*sql.DB, error) {
	mysqlDSN, err := toMySQLDSN(dsn)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

func toMySQLDSN(dsn string) (string, error) {
	if strings.HasPrefix(dsn, "mariadb://") || strings.HasPrefix(dsn, "mysql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("parse dsn: %w", err)
		}
		user := ""
		pass := ""
		if u.User != nil {
			user = u.User.Username()
			pw, _ := u.User.Password()
			pass = pw
		}
		host := u.Host
		db := strings.TrimPrefix(u.Path, "/")
		if user == "" || host == "" || db == "" {
			return "", fmt.Errorf("incomplete dsn (user/host/db required)")
		}
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&interpolateParams=true",
			user, pass, host, db), nil
	}
	return dsn, nil
}

// LoadSQL reads the transaction table into memory.
func LoadSQL(ctx context.Context, db *sql.DB, table string) ([]types.RawTransaction, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	q := fmt.Sprintf(`
		SELECT
			COALESCE(brand, '') AS brand,
			COALESCE(product, '') AS product,
			COALESCE(category, '') AS category,
			COALESCE(total_price, 0) AS total_price,
			COALESCE(bought_with_other_brands, '') AS bought_with
		FROM %s
	`, table)
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	var out []types.RawTransaction
	for rows.Next() {
		var brand, product, category, bought string
		var price float64
		if err := rows.Scan(&brand, &product, &category, &price, &bought); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, types.RawTransaction{
			Brand:      brand,
			Product:    product,
			Category:   category,
			TotalPrice: price,
			BoughtWith: bought,
		})
	}
	return out, rows.Err()
}
