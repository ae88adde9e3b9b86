package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clubolimpo_backend/internals/registry"
	"clubolimpo_backend/internals/testutil"
)

func TestMigrateCreatesEveryTable(t *testing.T) {
	db := testutil.NewDB(t)

	for _, m := range registry.Models() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}
	assert.True(t, db.Migrator().HasTable("news_categories"))
}
