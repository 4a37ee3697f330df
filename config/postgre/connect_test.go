package postgre

import (
	"testing"

	"auth-srv/config"
)

func TestBuildDSN(t *testing.T) {
	got := buildDSN(config.PostgresConfig{
		Host:     "db",
		Port:     5432,
		User:     "auth",
		Password: "p@ss word's",
		DBName:   "auth",
	})
	want := `host='db' port='5432' user='auth' password='p@ss word\'s' dbname='auth' sslmode='disable' search_path='public'`
	if got != want {
		t.Errorf("buildDSN =\n%s\nwant\n%s", got, want)
	}
}

func TestBuildDSN_SchemaAndSSL(t *testing.T) {
	got := buildDSN(config.PostgresConfig{Host: "db", Port: 1, SSLMode: "require", Schema: "auth"})
	want := `host='db' port='1' user='' password='' dbname='' sslmode='require' search_path='auth'`
	if got != want {
		t.Errorf("buildDSN = %s", got)
	}
}
