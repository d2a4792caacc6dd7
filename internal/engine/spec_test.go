package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-forge/internal/engine"
	"model-forge/internal/schema"
)

const goldenCurrentSpec = `# Auto-generated by model-forge from the 'users' table. Edits will be overwritten.
require 'spec_helper'

describe User do
  subject(:record) { described_class.new }

  it 'uses id as the primary key' do
    expect(described_class.primary_key).to eq('id')
  end

  describe '#email' do
    it 'is readable without raising' do
      expect(record).to respond_to(:email)
      expect { record.email }.not_to raise_error
    end

    it 'holds a string value' do
      expect(record.email).to be_a(String)
    end

    it 'rejects a non-string value' do
      record.email = 12345
      record.valid?
      expect(record.errors[:email]).to include('is not a string')
    end

    it 'rejects values longer than 50 characters' do
      record.email = 'x' * 51
      record.valid?
      expect(record.errors[:email]).to include('is too long (maximum is 50 characters)')
    end

    it 'rejects a blank value' do
      record.email = nil
      record.valid?
      expect(record.errors[:email]).to include("can't be blank")
    end
  end

  describe '#name' do
    it 'is readable without raising' do
      expect(record).to respond_to(:name)
      expect { record.name }.not_to raise_error
    end

    it 'holds a string value or nil' do
      expect(record.name).to be_a(String).or be_nil
    end

    it 'rejects a non-string value' do
      record.name = 12345
      record.valid?
      expect(record.errors[:name]).to include('is not a string')
    end

    it 'rejects values longer than 80 characters' do
      record.name = 'x' * 81
      record.valid?
      expect(record.errors[:name]).to include('is too long (maximum is 80 characters)')
    end
  end

  describe '#amount' do
    it 'is readable without raising' do
      expect(record).to respond_to(:amount)
      expect { record.amount }.not_to raise_error
    end

    it 'holds a numeric value or nil' do
      expect(record.amount).to be_a(Numeric).or be_nil
    end

    it 'rejects a non-numeric value' do
      record.amount = 'twelve'
      record.valid?
      expect(record.errors[:amount]).to include('is not a number')
    end

    it 'rejects values above 99999.99' do
      record.amount = 100000.00
      record.valid?
      expect(record.errors[:amount]).to include('must be less than or equal to 99999.99')
    end

    it 'rejects values below -99999.99' do
      record.amount = -100000.00
      record.valid?
      expect(record.errors[:amount]).to include('must be greater than or equal to -99999.99')
    end
  end

  describe '#age' do
    it 'is readable without raising' do
      expect(record).to respond_to(:age)
      expect { record.age }.not_to raise_error
    end

    it 'holds a numeric value' do
      expect(record.age).to be_a(Numeric)
    end

    it 'rejects a non-numeric value' do
      record.age = 'twelve'
      record.valid?
      expect(record.errors[:age]).to include('is not a number')
    end

    it 'rejects values above 9999999999' do
      record.age = 10000000000
      record.valid?
      expect(record.errors[:age]).to include('must be less than or equal to 9999999999')
    end

    it 'rejects values below -9999999999' do
      record.age = -10000000000
      record.valid?
      expect(record.errors[:age]).to include('must be greater than or equal to -9999999999')
    end

    it 'rejects a blank value' do
      record.age = nil
      record.valid?
      expect(record.errors[:age]).to include("can't be blank")
    end
  end

  describe '#born_on' do
    it 'is readable without raising' do
      expect(record).to respond_to(:born_on)
      expect { record.born_on }.not_to raise_error
    end

    it 'holds a date value or nil' do
      expect(record.born_on).to be_a(Date).or be_nil
    end
  end

  describe '#updated_at' do
    it 'is readable without raising' do
      expect(record).to respond_to(:updated_at)
      expect { record.updated_at }.not_to raise_error
    end

    it 'holds a time value' do
      expect(record.updated_at).to be_a(Time)
    end

    it 'rejects a blank value' do
      record.updated_at = nil
      record.valid?
      expect(record.errors[:updated_at]).to include("can't be blank")
    end
  end
end
`

func TestSpecCurrentGolden(t *testing.T) {
	g, err := engine.New(usersInput(), engine.StyleCurrent)
	require.NoError(t, err)
	assert.Equal(t, goldenCurrentSpec, g.Spec())
}

func TestSpecLegacyOmitsNonStringChecks(t *testing.T) {
	g, err := engine.New(usersInput(), engine.StyleLegacy)
	require.NoError(t, err)
	spec := g.Spec()

	// 레거시 스타일에는 format 규칙이 없으므로 non-string 검증도 없음
	assert.NotContains(t, spec, "rejects a non-string value")

	assert.Contains(t, spec, "it 'rejects values longer than 50 characters' do")
	assert.Contains(t, spec, "it 'rejects a non-numeric value' do")
	assert.Contains(t, spec, `expect(record.errors[:email]).to include("can't be blank")`)
	assert.Contains(t, spec, "it 'uses id as the primary key' do")
}

func TestSpecCompositeKeyAssertion(t *testing.T) {
	in := engine.Input{
		TableName:  "order_items",
		PrimaryKey: schema.CompositeKey{Names: []string{"order_id", "item_id"}},
		Columns:    []*schema.Column{intCol("quantity", 5, false)},
	}
	g, err := engine.New(in, engine.StyleCurrent)
	require.NoError(t, err)
	spec := g.Spec()

	assert.Contains(t, spec, "it 'uses order_id, item_id as the composite primary key' do")
	assert.Contains(t, spec, "expect(described_class.primary_keys).to eq([:order_id, :item_id])")
}

func TestSpecWithoutKeyOmitsIdentity(t *testing.T) {
	in := engine.Input{
		TableName: "active_users",
		Columns:   []*schema.Column{textCol("email", 50, true)},
	}
	g, err := engine.New(in, engine.StyleCurrent)
	require.NoError(t, err)

	assert.NotContains(t, g.Spec(), "primary key")
}

func TestSpecFractionalBoundViolation(t *testing.T) {
	// scale == precision: 경계값 ".99"는 루비 리터럴로 0.99가 되어야 함
	in := engine.Input{
		TableName: "rates",
		Columns:   []*schema.Column{decimalCol("rate", 2, 2, true)},
	}
	g, err := engine.New(in, engine.StyleCurrent)
	require.NoError(t, err)
	spec := g.Spec()

	assert.Contains(t, spec, "it 'rejects values above 0.99' do")
	assert.Contains(t, spec, "record.rate = 1.00")
	assert.Contains(t, spec, "include('must be less than or equal to 0.99')")
	assert.Contains(t, spec, "it 'rejects values below -0.99' do")
	assert.Contains(t, spec, "record.rate = -1.00")
	assert.Contains(t, spec, "include('must be greater than or equal to -0.99')")
}
