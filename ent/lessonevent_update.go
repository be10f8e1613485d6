// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyam/learnsphere/ent/lessonevent"
	"github.com/priyam/learnsphere/ent/predicate"
)

// LessonEventUpdate is the builder for updating LessonEvent entities.
type LessonEventUpdate struct {
	config
	hooks    []Hook
	mutation *LessonEventMutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (_u *LessonEventUpdate) Where(ps ...predicate.LessonEvent) *LessonEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LessonEventUpdate) SetSessionID(v string) *LessonEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableSessionID(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *LessonEventUpdate) SetTopic(v string) *LessonEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableTopic(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubTopic sets the "sub_topic" field.
func (_u *LessonEventUpdate) SetSubTopic(v string) *LessonEventUpdate {
	_u.mutation.SetSubTopic(v)
	return _u
}

// SetNillableSubTopic sets the "sub_topic" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableSubTopic(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetSubTopic(*v)
	}
	return _u
}

// SetLearningStyle sets the "learning_style" field.
func (_u *LessonEventUpdate) SetLearningStyle(v string) *LessonEventUpdate {
	_u.mutation.SetLearningStyle(v)
	return _u
}

// SetNillableLearningStyle sets the "learning_style" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableLearningStyle(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetLearningStyle(*v)
	}
	return _u
}

// SetKnowledgeLevel sets the "knowledge_level" field.
func (_u *LessonEventUpdate) SetKnowledgeLevel(v string) *LessonEventUpdate {
	_u.mutation.SetKnowledgeLevel(v)
	return _u
}

// SetNillableKnowledgeLevel sets the "knowledge_level" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableKnowledgeLevel(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetKnowledgeLevel(*v)
	}
	return _u
}

// SetRetry sets the "retry" field.
func (_u *LessonEventUpdate) SetRetry(v bool) *LessonEventUpdate {
	_u.mutation.SetRetry(v)
	return _u
}

// SetNillableRetry sets the "retry" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableRetry(v *bool) *LessonEventUpdate {
	if v != nil {
		_u.SetRetry(*v)
	}
	return _u
}

// SetLessonTitle sets the "lesson_title" field.
func (_u *LessonEventUpdate) SetLessonTitle(v string) *LessonEventUpdate {
	_u.mutation.SetLessonTitle(v)
	return _u
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableLessonTitle(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetLessonTitle(*v)
	}
	return _u
}

// SetSectionCount sets the "section_count" field.
func (_u *LessonEventUpdate) SetSectionCount(v int) *LessonEventUpdate {
	_u.mutation.ResetSectionCount()
	_u.mutation.SetSectionCount(v)
	return _u
}

// SetNillableSectionCount sets the "section_count" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableSectionCount(v *int) *LessonEventUpdate {
	if v != nil {
		_u.SetSectionCount(*v)
	}
	return _u
}

// AddSectionCount adds value to the "section_count" field.
func (_u *LessonEventUpdate) AddSectionCount(v int) *LessonEventUpdate {
	_u.mutation.AddSectionCount(v)
	return _u
}

// Mutation returns the LessonEventMutation object of the builder.
func (_u *LessonEventUpdate) Mutation() *LessonEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := lessonevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := lessonevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearningStyle(); ok {
		if err := lessonevent.LearningStyleValidator(v); err != nil {
			return &ValidationError{Name: "learning_style", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.learning_style": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KnowledgeLevel(); ok {
		if err := lessonevent.KnowledgeLevelValidator(v); err != nil {
			return &ValidationError{Name: "knowledge_level", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.knowledge_level": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(lessonevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(lessonevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubTopic(); ok {
		_spec.SetField(lessonevent.FieldSubTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningStyle(); ok {
		_spec.SetField(lessonevent.FieldLearningStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.KnowledgeLevel(); ok {
		_spec.SetField(lessonevent.FieldKnowledgeLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Retry(); ok {
		_spec.SetField(lessonevent.FieldRetry, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LessonTitle(); ok {
		_spec.SetField(lessonevent.FieldLessonTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionCount(); ok {
		_spec.SetField(lessonevent.FieldSectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionCount(); ok {
		_spec.AddField(lessonevent.FieldSectionCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonEventUpdateOne is the builder for updating a single LessonEvent entity.
type LessonEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *LessonEventUpdateOne) SetSessionID(v string) *LessonEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableSessionID(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *LessonEventUpdateOne) SetTopic(v string) *LessonEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableTopic(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubTopic sets the "sub_topic" field.
func (_u *LessonEventUpdateOne) SetSubTopic(v string) *LessonEventUpdateOne {
	_u.mutation.SetSubTopic(v)
	return _u
}

// SetNillableSubTopic sets the "sub_topic" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableSubTopic(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetSubTopic(*v)
	}
	return _u
}

// SetLearningStyle sets the "learning_style" field.
func (_u *LessonEventUpdateOne) SetLearningStyle(v string) *LessonEventUpdateOne {
	_u.mutation.SetLearningStyle(v)
	return _u
}

// SetNillableLearningStyle sets the "learning_style" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableLearningStyle(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetLearningStyle(*v)
	}
	return _u
}

// SetKnowledgeLevel sets the "knowledge_level" field.
func (_u *LessonEventUpdateOne) SetKnowledgeLevel(v string) *LessonEventUpdateOne {
	_u.mutation.SetKnowledgeLevel(v)
	return _u
}

// SetNillableKnowledgeLevel sets the "knowledge_level" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableKnowledgeLevel(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetKnowledgeLevel(*v)
	}
	return _u
}

// SetRetry sets the "retry" field.
func (_u *LessonEventUpdateOne) SetRetry(v bool) *LessonEventUpdateOne {
	_u.mutation.SetRetry(v)
	return _u
}

// SetNillableRetry sets the "retry" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableRetry(v *bool) *LessonEventUpdateOne {
	if v != nil {
		_u.SetRetry(*v)
	}
	return _u
}

// SetLessonTitle sets the "lesson_title" field.
func (_u *LessonEventUpdateOne) SetLessonTitle(v string) *LessonEventUpdateOne {
	_u.mutation.SetLessonTitle(v)
	return _u
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableLessonTitle(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetLessonTitle(*v)
	}
	return _u
}

// SetSectionCount sets the "section_count" field.
func (_u *LessonEventUpdateOne) SetSectionCount(v int) *LessonEventUpdateOne {
	_u.mutation.ResetSectionCount()
	_u.mutation.SetSectionCount(v)
	return _u
}

// SetNillableSectionCount sets the "section_count" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableSectionCount(v *int) *LessonEventUpdateOne {
	if v != nil {
		_u.SetSectionCount(*v)
	}
	return _u
}

// AddSectionCount adds value to the "section_count" field.
func (_u *LessonEventUpdateOne) AddSectionCount(v int) *LessonEventUpdateOne {
	_u.mutation.AddSectionCount(v)
	return _u
}

// Mutation returns the LessonEventMutation object of the builder.
func (_u *LessonEventUpdateOne) Mutation() *LessonEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (_u *LessonEventUpdateOne) Where(ps ...predicate.LessonEvent) *LessonEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonEventUpdateOne) Select(field string, fields ...string) *LessonEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonEvent entity.
func (_u *LessonEventUpdateOne) Save(ctx context.Context) (*LessonEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonEventUpdateOne) SaveX(ctx context.Context) *LessonEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := lessonevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := lessonevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearningStyle(); ok {
		if err := lessonevent.LearningStyleValidator(v); err != nil {
			return &ValidationError{Name: "learning_style", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.learning_style": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KnowledgeLevel(); ok {
		if err := lessonevent.KnowledgeLevelValidator(v); err != nil {
			return &ValidationError{Name: "knowledge_level", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.knowledge_level": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonEventUpdateOne) sqlSave(ctx context.Context) (_node *LessonEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonevent.FieldID)
		for _, f := range fields {
			if !lessonevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(lessonevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(lessonevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubTopic(); ok {
		_spec.SetField(lessonevent.FieldSubTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningStyle(); ok {
		_spec.SetField(lessonevent.FieldLearningStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.KnowledgeLevel(); ok {
		_spec.SetField(lessonevent.FieldKnowledgeLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Retry(); ok {
		_spec.SetField(lessonevent.FieldRetry, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LessonTitle(); ok {
		_spec.SetField(lessonevent.FieldLessonTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionCount(); ok {
		_spec.SetField(lessonevent.FieldSectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionCount(); ok {
		_spec.AddField(lessonevent.FieldSectionCount, field.TypeInt, value)
	}
	_node = &LessonEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
