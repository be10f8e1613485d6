// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyam/learnsphere/ent/lessonevent"
)

// LessonEventCreate is the builder for creating a LessonEvent entity.
type LessonEventCreate struct {
	config
	mutation *LessonEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *LessonEventCreate) SetSequence(v int64) *LessonEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *LessonEventCreate) SetTimestamp(v time.Time) *LessonEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LessonEventCreate) SetNillableTimestamp(v *time.Time) *LessonEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *LessonEventCreate) SetSessionID(v string) *LessonEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *LessonEventCreate) SetTopic(v string) *LessonEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetSubTopic sets the "sub_topic" field.
func (_c *LessonEventCreate) SetSubTopic(v string) *LessonEventCreate {
	_c.mutation.SetSubTopic(v)
	return _c
}

// SetNillableSubTopic sets the "sub_topic" field if the given value is not nil.
func (_c *LessonEventCreate) SetNillableSubTopic(v *string) *LessonEventCreate {
	if v != nil {
		_c.SetSubTopic(*v)
	}
	return _c
}

// SetLearningStyle sets the "learning_style" field.
func (_c *LessonEventCreate) SetLearningStyle(v string) *LessonEventCreate {
	_c.mutation.SetLearningStyle(v)
	return _c
}

// SetKnowledgeLevel sets the "knowledge_level" field.
func (_c *LessonEventCreate) SetKnowledgeLevel(v string) *LessonEventCreate {
	_c.mutation.SetKnowledgeLevel(v)
	return _c
}

// SetRetry sets the "retry" field.
func (_c *LessonEventCreate) SetRetry(v bool) *LessonEventCreate {
	_c.mutation.SetRetry(v)
	return _c
}

// SetLessonTitle sets the "lesson_title" field.
func (_c *LessonEventCreate) SetLessonTitle(v string) *LessonEventCreate {
	_c.mutation.SetLessonTitle(v)
	return _c
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_c *LessonEventCreate) SetNillableLessonTitle(v *string) *LessonEventCreate {
	if v != nil {
		_c.SetLessonTitle(*v)
	}
	return _c
}

// SetSectionCount sets the "section_count" field.
func (_c *LessonEventCreate) SetSectionCount(v int) *LessonEventCreate {
	_c.mutation.SetSectionCount(v)
	return _c
}

// SetNillableSectionCount sets the "section_count" field if the given value is not nil.
func (_c *LessonEventCreate) SetNillableSectionCount(v *int) *LessonEventCreate {
	if v != nil {
		_c.SetSectionCount(*v)
	}
	return _c
}

// Mutation returns the LessonEventMutation object of the builder.
func (_c *LessonEventCreate) Mutation() *LessonEventMutation {
	return _c.mutation
}

// Save creates the LessonEvent in the database.
func (_c *LessonEventCreate) Save(ctx context.Context) (*LessonEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonEventCreate) SaveX(ctx context.Context) *LessonEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := lessonevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SubTopic(); !ok {
		v := lessonevent.DefaultSubTopic
		_c.mutation.SetSubTopic(v)
	}
	if _, ok := _c.mutation.LessonTitle(); !ok {
		v := lessonevent.DefaultLessonTitle
		_c.mutation.SetLessonTitle(v)
	}
	if _, ok := _c.mutation.SectionCount(); !ok {
		v := lessonevent.DefaultSectionCount
		_c.mutation.SetSectionCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "LessonEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LessonEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LessonEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := lessonevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "LessonEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := lessonevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubTopic(); !ok {
		return &ValidationError{Name: "sub_topic", err: errors.New(`ent: missing required field "LessonEvent.sub_topic"`)}
	}
	if _, ok := _c.mutation.LearningStyle(); !ok {
		return &ValidationError{Name: "learning_style", err: errors.New(`ent: missing required field "LessonEvent.learning_style"`)}
	}
	if v, ok := _c.mutation.LearningStyle(); ok {
		if err := lessonevent.LearningStyleValidator(v); err != nil {
			return &ValidationError{Name: "learning_style", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.learning_style": %w`, err)}
		}
	}
	if _, ok := _c.mutation.KnowledgeLevel(); !ok {
		return &ValidationError{Name: "knowledge_level", err: errors.New(`ent: missing required field "LessonEvent.knowledge_level"`)}
	}
	if v, ok := _c.mutation.KnowledgeLevel(); ok {
		if err := lessonevent.KnowledgeLevelValidator(v); err != nil {
			return &ValidationError{Name: "knowledge_level", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.knowledge_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Retry(); !ok {
		return &ValidationError{Name: "retry", err: errors.New(`ent: missing required field "LessonEvent.retry"`)}
	}
	if _, ok := _c.mutation.LessonTitle(); !ok {
		return &ValidationError{Name: "lesson_title", err: errors.New(`ent: missing required field "LessonEvent.lesson_title"`)}
	}
	if _, ok := _c.mutation.SectionCount(); !ok {
		return &ValidationError{Name: "section_count", err: errors.New(`ent: missing required field "LessonEvent.section_count"`)}
	}
	return nil
}

func (_c *LessonEventCreate) sqlSave(ctx context.Context) (*LessonEvent, error) {
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

func (_c *LessonEventCreate) createSpec() (*LessonEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonevent.Table, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(lessonevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(lessonevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(lessonevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(lessonevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.SubTopic(); ok {
		_spec.SetField(lessonevent.FieldSubTopic, field.TypeString, value)
		_node.SubTopic = value
	}
	if value, ok := _c.mutation.LearningStyle(); ok {
		_spec.SetField(lessonevent.FieldLearningStyle, field.TypeString, value)
		_node.LearningStyle = value
	}
	if value, ok := _c.mutation.KnowledgeLevel(); ok {
		_spec.SetField(lessonevent.FieldKnowledgeLevel, field.TypeString, value)
		_node.KnowledgeLevel = value
	}
	if value, ok := _c.mutation.Retry(); ok {
		_spec.SetField(lessonevent.FieldRetry, field.TypeBool, value)
		_node.Retry = value
	}
	if value, ok := _c.mutation.LessonTitle(); ok {
		_spec.SetField(lessonevent.FieldLessonTitle, field.TypeString, value)
		_node.LessonTitle = value
	}
	if value, ok := _c.mutation.SectionCount(); ok {
		_spec.SetField(lessonevent.FieldSectionCount, field.TypeInt, value)
		_node.SectionCount = value
	}
	return _node, _spec
}

// LessonEventCreateBulk is the builder for creating many LessonEvent entities in bulk.
type LessonEventCreateBulk struct {
	config
	err      error
	builders []*LessonEventCreate
}

// Save creates the LessonEvent entities in the database.
func (_c *LessonEventCreateBulk) Save(ctx context.Context) ([]*LessonEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonEventMutation)
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
func (_c *LessonEventCreateBulk) SaveX(ctx context.Context) []*LessonEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
