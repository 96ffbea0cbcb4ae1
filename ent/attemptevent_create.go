// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/idelarosa/subjunto/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetVerb sets the "verb" field.
func (_c *AttemptEventCreate) SetVerb(v string) *AttemptEventCreate {
	_c.mutation.SetVerb(v)
	return _c
}

// SetTense sets the "tense" field.
func (_c *AttemptEventCreate) SetTense(v string) *AttemptEventCreate {
	_c.mutation.SetTense(v)
	return _c
}

// SetPerson sets the "person" field.
func (_c *AttemptEventCreate) SetPerson(v string) *AttemptEventCreate {
	_c.mutation.SetPerson(v)
	return _c
}

// SetTriggerCategory sets the "trigger_category" field.
func (_c *AttemptEventCreate) SetTriggerCategory(v string) *AttemptEventCreate {
	_c.mutation.SetTriggerCategory(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *AttemptEventCreate) SetTier(v int) *AttemptEventCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetExpected sets the "expected" field.
func (_c *AttemptEventCreate) SetExpected(v string) *AttemptEventCreate {
	_c.mutation.SetExpected(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *AttemptEventCreate) SetAnswer(v string) *AttemptEventCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableAnswer(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetClassification sets the "classification" field.
func (_c *AttemptEventCreate) SetClassification(v string) *AttemptEventCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AttemptEventCreate) SetCorrect(v bool) *AttemptEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetQuality sets the "quality" field.
func (_c *AttemptEventCreate) SetQuality(v int) *AttemptEventCreate {
	_c.mutation.SetQuality(v)
	return _c
}

// SetDistance sets the "distance" field.
func (_c *AttemptEventCreate) SetDistance(v int) *AttemptEventCreate {
	_c.mutation.SetDistance(v)
	return _c
}

// SetNillableDistance sets the "distance" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableDistance(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetDistance(*v)
	}
	return _c
}

// SetHintUsed sets the "hint_used" field.
func (_c *AttemptEventCreate) SetHintUsed(v bool) *AttemptEventCreate {
	_c.mutation.SetHintUsed(v)
	return _c
}

// SetNillableHintUsed sets the "hint_used" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableHintUsed(v *bool) *AttemptEventCreate {
	if v != nil {
		_c.SetHintUsed(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AttemptEventCreate) SetSessionID(v string) *AttemptEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableSessionID(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Answer(); !ok {
		v := attemptevent.DefaultAnswer
		_c.mutation.SetAnswer(v)
	}
	if _, ok := _c.mutation.Distance(); !ok {
		v := attemptevent.DefaultDistance
		_c.mutation.SetDistance(v)
	}
	if _, ok := _c.mutation.HintUsed(); !ok {
		v := attemptevent.DefaultHintUsed
		_c.mutation.SetHintUsed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Verb(); !ok {
		return &ValidationError{Name: "verb", err: errors.New(`ent: missing required field "AttemptEvent.verb"`)}
	}
	if v, ok := _c.mutation.Verb(); ok {
		if err := attemptevent.VerbValidator(v); err != nil {
			return &ValidationError{Name: "verb", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.verb": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tense(); !ok {
		return &ValidationError{Name: "tense", err: errors.New(`ent: missing required field "AttemptEvent.tense"`)}
	}
	if v, ok := _c.mutation.Tense(); ok {
		if err := attemptevent.TenseValidator(v); err != nil {
			return &ValidationError{Name: "tense", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.tense": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Person(); !ok {
		return &ValidationError{Name: "person", err: errors.New(`ent: missing required field "AttemptEvent.person"`)}
	}
	if v, ok := _c.mutation.Person(); ok {
		if err := attemptevent.PersonValidator(v); err != nil {
			return &ValidationError{Name: "person", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.person": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggerCategory(); !ok {
		return &ValidationError{Name: "trigger_category", err: errors.New(`ent: missing required field "AttemptEvent.trigger_category"`)}
	}
	if v, ok := _c.mutation.TriggerCategory(); ok {
		if err := attemptevent.TriggerCategoryValidator(v); err != nil {
			return &ValidationError{Name: "trigger_category", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.trigger_category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "AttemptEvent.tier"`)}
	}
	if _, ok := _c.mutation.Expected(); !ok {
		return &ValidationError{Name: "expected", err: errors.New(`ent: missing required field "AttemptEvent.expected"`)}
	}
	if v, ok := _c.mutation.Expected(); ok {
		if err := attemptevent.ExpectedValidator(v); err != nil {
			return &ValidationError{Name: "expected", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.expected": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "AttemptEvent.answer"`)}
	}
	if _, ok := _c.mutation.Classification(); !ok {
		return &ValidationError{Name: "classification", err: errors.New(`ent: missing required field "AttemptEvent.classification"`)}
	}
	if v, ok := _c.mutation.Classification(); ok {
		if err := attemptevent.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.classification": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AttemptEvent.correct"`)}
	}
	if _, ok := _c.mutation.Quality(); !ok {
		return &ValidationError{Name: "quality", err: errors.New(`ent: missing required field "AttemptEvent.quality"`)}
	}
	if _, ok := _c.mutation.Distance(); !ok {
		return &ValidationError{Name: "distance", err: errors.New(`ent: missing required field "AttemptEvent.distance"`)}
	}
	if _, ok := _c.mutation.HintUsed(); !ok {
		return &ValidationError{Name: "hint_used", err: errors.New(`ent: missing required field "AttemptEvent.hint_used"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Verb(); ok {
		_spec.SetField(attemptevent.FieldVerb, field.TypeString, value)
		_node.Verb = value
	}
	if value, ok := _c.mutation.Tense(); ok {
		_spec.SetField(attemptevent.FieldTense, field.TypeString, value)
		_node.Tense = value
	}
	if value, ok := _c.mutation.Person(); ok {
		_spec.SetField(attemptevent.FieldPerson, field.TypeString, value)
		_node.Person = value
	}
	if value, ok := _c.mutation.TriggerCategory(); ok {
		_spec.SetField(attemptevent.FieldTriggerCategory, field.TypeString, value)
		_node.TriggerCategory = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(attemptevent.FieldTier, field.TypeInt, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Expected(); ok {
		_spec.SetField(attemptevent.FieldExpected, field.TypeString, value)
		_node.Expected = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(attemptevent.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(attemptevent.FieldClassification, field.TypeString, value)
		_node.Classification = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Quality(); ok {
		_spec.SetField(attemptevent.FieldQuality, field.TypeInt, value)
		_node.Quality = value
	}
	if value, ok := _c.mutation.Distance(); ok {
		_spec.SetField(attemptevent.FieldDistance, field.TypeInt, value)
		_node.Distance = value
	}
	if value, ok := _c.mutation.HintUsed(); ok {
		_spec.SetField(attemptevent.FieldHintUsed, field.TypeBool, value)
		_node.HintUsed = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
