package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-forge/internal/engine"
	"model-forge/internal/schema"
)

// usersInput is the reference table both golden tests render: a single
// auto-increment key, bounded and nullable text, exact numerics and
// both temporal kinds, plus one foreign key.
func usersInput() engine.Input {
	return engine.Input{
		ClassName:  "User",
		TableName:  "users",
		PrimaryKey: schema.SingleKey{Name: "id"},
		Relations:  []string{"roles"},
		Columns: []*schema.Column{
			idCol(),
			textCol("email", 50, false),
			textCol("name", 80, true),
			decimalCol("amount", 7, 2, true),
			intCol("age", 10, false),
			dateCol("born_on", true),
			datetimeCol("updated_at", false),
		},
	}
}

const goldenCurrentModel = `# Auto-generated by model-forge from the 'users' table. Edits will be overwritten.
class User < ActiveRecord::Base
  self.table_name = 'users'
  self.primary_key = :id

  belongs_to :roles

  validates :email, presence: true, length: { maximum: 50 }, format: { with: /\A[a-zA-Z\s]*\z/, message: 'is not a string' }
  validates :name, length: { maximum: 80 }, format: { with: /\A[a-zA-Z\s]*\z/, message: 'is not a string', if: :name? }

  validates :amount, numericality: { less_than_or_equal_to: 99999.99, greater_than_or_equal_to: -99999.99 }
  validates :age, presence: true, numericality: { only_integer: true, less_than_or_equal_to: 9999999999, greater_than_or_equal_to: -9999999999 }

  # Requires the validates_timeliness gem.
  validates :born_on, timeliness: { type: :date }
  validates :updated_at, presence: true, timeliness: { type: :datetime }
end
`

const goldenLegacyModel = `# Auto-generated by model-forge from the 'users' table. Edits will be overwritten.
class User < ActiveRecord::Base
  self.table_name = 'users'
  self.primary_key = :id

  belongs_to :roles

  validates_length_of :email, :maximum => 50
  validates_length_of :name, :maximum => 80, :allow_blank => true

  validates_presence_of :email
  validates_presence_of :age
  validates_presence_of :updated_at

  validates_numericality_of :amount, :less_than_or_equal_to => 99999.99, :greater_than_or_equal_to => -99999.99
  validates_numericality_of :age, :only_integer => true, :less_than_or_equal_to => 9999999999, :greater_than_or_equal_to => -9999999999

  # Requires the validates_timeliness gem.
  validates_date :born_on
  validates_datetime :updated_at
end
`

func TestModelCurrentGolden(t *testing.T) {
	g, err := engine.New(usersInput(), engine.StyleCurrent)
	require.NoError(t, err)
	assert.Equal(t, goldenCurrentModel, g.Model())
}

func TestModelLegacyGolden(t *testing.T) {
	g, err := engine.New(usersInput(), engine.StyleLegacy)
	require.NoError(t, err)
	assert.Equal(t, goldenLegacyModel, g.Model())
}

func TestModelCompositeKey(t *testing.T) {
	in := engine.Input{
		TableName:  "order_items",
		PrimaryKey: schema.CompositeKey{Names: []string{"order_id", "item_id"}},
		Relations:  []string{"Orders", "orders", "Items"},
		Columns: []*schema.Column{
			intCol("order_id", 10, false),
			intCol("item_id", 10, false),
			intCol("quantity", 5, false),
		},
	}
	g, err := engine.New(in, engine.StyleCurrent)
	require.NoError(t, err)
	model := g.Model()

	// 클래스명은 테이블명에서 유도
	assert.Contains(t, model, "class OrderItem < ActiveRecord::Base\n")
	assert.Contains(t, model, "  # Requires the composite_primary_keys gem.\n  self.primary_keys = :order_id, :item_id\n")

	// dedup: 대소문자 무시, 첫 등장 순서 유지
	assert.Contains(t, model, "  belongs_to :orders\n  belongs_to :items\n")
	assert.Equal(t, 1, strings.Count(model, "belongs_to :orders"))
}

func TestModelNoPrimaryKey(t *testing.T) {
	in := engine.Input{
		TableName: "active_users",
		Columns:   []*schema.Column{textCol("email", 50, false)},
	}
	g, err := engine.New(in, engine.StyleCurrent)
	require.NoError(t, err)

	want := `# Auto-generated by model-forge from the 'active_users' table. Edits will be overwritten.
class ActiveUser < ActiveRecord::Base
  self.table_name = 'active_users'

  validates :email, presence: true, length: { maximum: 50 }, format: { with: /\A[a-zA-Z\s]*\z/, message: 'is not a string' }
end
`
	assert.Equal(t, want, g.Model())
}

func TestModelIdempotent(t *testing.T) {
	g1, err := engine.New(usersInput(), engine.StyleCurrent)
	require.NoError(t, err)
	g2, err := engine.New(usersInput(), engine.StyleCurrent)
	require.NoError(t, err)

	assert.Equal(t, g1.Model(), g1.Model())
	assert.Equal(t, g1.Model(), g2.Model())
	assert.Equal(t, g1.Spec(), g2.Spec())
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := engine.New(engine.Input{}, engine.StyleCurrent)
	require.Error(t, err, "table name is required")

	_, err = engine.New(usersInput(), engine.Style(7))
	assert.ErrorIs(t, err, engine.ErrUnknownStyle)

	bad := usersInput()
	bad.Columns = append(bad.Columns, decimalCol("rate", 3, 5, false))
	_, err = engine.New(bad, engine.StyleCurrent)
	assert.ErrorIs(t, err, engine.ErrInvalidColumn)
}
