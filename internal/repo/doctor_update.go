// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/petscare/petscare_backend/internal/repo/doctor"
	"github.com/petscare/petscare_backend/internal/repo/predicate"
	"github.com/petscare/petscare_backend/pkg/schedule"
)

// DoctorUpdate is the builder for updating Doctor entities.
type DoctorUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorMutation
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdate) Where(ps ...predicate.Doctor) *DoctorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdate) SetUpdatedAt(v time.Time) *DoctorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *DoctorUpdate) SetName(v string) *DoctorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableName(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *DoctorUpdate) SetEmail(v string) *DoctorUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableEmail(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *DoctorUpdate) SetSpecialization(v string) *DoctorUpdate {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableSpecialization(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// SetContactNumber sets the "contact_number" field.
func (_u *DoctorUpdate) SetContactNumber(v string) *DoctorUpdate {
	_u.mutation.SetContactNumber(v)
	return _u
}

// SetNillableContactNumber sets the "contact_number" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableContactNumber(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetContactNumber(*v)
	}
	return _u
}

// ClearContactNumber clears the value of the "contact_number" field.
func (_u *DoctorUpdate) ClearContactNumber() *DoctorUpdate {
	_u.mutation.ClearContactNumber()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *DoctorUpdate) SetNotes(v string) *DoctorUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableNotes(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *DoctorUpdate) ClearNotes() *DoctorUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetAvailability sets the "availability" field.
func (_u *DoctorUpdate) SetAvailability(v string) *DoctorUpdate {
	_u.mutation.SetAvailability(v)
	return _u
}

// SetNillableAvailability sets the "availability" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableAvailability(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetAvailability(*v)
	}
	return _u
}

// ClearAvailability clears the value of the "availability" field.
func (_u *DoctorUpdate) ClearAvailability() *DoctorUpdate {
	_u.mutation.ClearAvailability()
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *DoctorUpdate) SetSchedule(v schedule.Weekly) *DoctorUpdate {
	_u.mutation.SetSchedule(v)
	return _u
}

// AppendSchedule appends value to the "schedule" field.
func (_u *DoctorUpdate) AppendSchedule(v schedule.Weekly) *DoctorUpdate {
	_u.mutation.AppendSchedule(v)
	return _u
}

// ClearSchedule clears the value of the "schedule" field.
func (_u *DoctorUpdate) ClearSchedule() *DoctorUpdate {
	_u.mutation.ClearSchedule()
	return _u
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdate) Mutation() *DoctorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := doctor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Doctor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := doctor.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Doctor.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialization(); ok {
		if err := doctor.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "Doctor.specialization": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContactNumber(); ok {
		if err := doctor.ContactNumberValidator(v); err != nil {
			return &ValidationError{Name: "contact_number", err: fmt.Errorf(`repo: validator failed for field "Doctor.contact_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Availability(); ok {
		if err := doctor.AvailabilityValidator(v); err != nil {
			return &ValidationError{Name: "availability", err: fmt.Errorf(`repo: validator failed for field "Doctor.availability": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Schedule(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "schedule", err: fmt.Errorf(`repo: validator failed for field "Doctor.schedule": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(doctor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(doctor.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(doctor.FieldSpecialization, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContactNumber(); ok {
		_spec.SetField(doctor.FieldContactNumber, field.TypeString, value)
	}
	if _u.mutation.ContactNumberCleared() {
		_spec.ClearField(doctor.FieldContactNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(doctor.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(doctor.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Availability(); ok {
		_spec.SetField(doctor.FieldAvailability, field.TypeString, value)
	}
	if _u.mutation.AvailabilityCleared() {
		_spec.ClearField(doctor.FieldAvailability, field.TypeString)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(doctor.FieldSchedule, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchedule(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, doctor.FieldSchedule, value)
		})
	}
	if _u.mutation.ScheduleCleared() {
		_spec.ClearField(doctor.FieldSchedule, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorUpdateOne is the builder for updating a single Doctor entity.
type DoctorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdateOne) SetUpdatedAt(v time.Time) *DoctorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *DoctorUpdateOne) SetName(v string) *DoctorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableName(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *DoctorUpdateOne) SetEmail(v string) *DoctorUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableEmail(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *DoctorUpdateOne) SetSpecialization(v string) *DoctorUpdateOne {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableSpecialization(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// SetContactNumber sets the "contact_number" field.
func (_u *DoctorUpdateOne) SetContactNumber(v string) *DoctorUpdateOne {
	_u.mutation.SetContactNumber(v)
	return _u
}

// SetNillableContactNumber sets the "contact_number" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableContactNumber(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetContactNumber(*v)
	}
	return _u
}

// ClearContactNumber clears the value of the "contact_number" field.
func (_u *DoctorUpdateOne) ClearContactNumber() *DoctorUpdateOne {
	_u.mutation.ClearContactNumber()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *DoctorUpdateOne) SetNotes(v string) *DoctorUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableNotes(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *DoctorUpdateOne) ClearNotes() *DoctorUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetAvailability sets the "availability" field.
func (_u *DoctorUpdateOne) SetAvailability(v string) *DoctorUpdateOne {
	_u.mutation.SetAvailability(v)
	return _u
}

// SetNillableAvailability sets the "availability" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableAvailability(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetAvailability(*v)
	}
	return _u
}

// ClearAvailability clears the value of the "availability" field.
func (_u *DoctorUpdateOne) ClearAvailability() *DoctorUpdateOne {
	_u.mutation.ClearAvailability()
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *DoctorUpdateOne) SetSchedule(v schedule.Weekly) *DoctorUpdateOne {
	_u.mutation.SetSchedule(v)
	return _u
}

// AppendSchedule appends value to the "schedule" field.
func (_u *DoctorUpdateOne) AppendSchedule(v schedule.Weekly) *DoctorUpdateOne {
	_u.mutation.AppendSchedule(v)
	return _u
}

// ClearSchedule clears the value of the "schedule" field.
func (_u *DoctorUpdateOne) ClearSchedule() *DoctorUpdateOne {
	_u.mutation.ClearSchedule()
	return _u
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdateOne) Mutation() *DoctorMutation {
	return _u.mutation
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdateOne) Where(ps ...predicate.Doctor) *DoctorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorUpdateOne) Select(field string, fields ...string) *DoctorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Doctor entity.
func (_u *DoctorUpdateOne) Save(ctx context.Context) (*Doctor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdateOne) SaveX(ctx context.Context) *Doctor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := doctor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Doctor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := doctor.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Doctor.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialization(); ok {
		if err := doctor.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "Doctor.specialization": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContactNumber(); ok {
		if err := doctor.ContactNumberValidator(v); err != nil {
			return &ValidationError{Name: "contact_number", err: fmt.Errorf(`repo: validator failed for field "Doctor.contact_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Availability(); ok {
		if err := doctor.AvailabilityValidator(v); err != nil {
			return &ValidationError{Name: "availability", err: fmt.Errorf(`repo: validator failed for field "Doctor.availability": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Schedule(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "schedule", err: fmt.Errorf(`repo: validator failed for field "Doctor.schedule": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorUpdateOne) sqlSave(ctx context.Context) (_node *Doctor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Doctor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctor.FieldID)
		for _, f := range fields {
			if !doctor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctor.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(doctor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(doctor.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(doctor.FieldSpecialization, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContactNumber(); ok {
		_spec.SetField(doctor.FieldContactNumber, field.TypeString, value)
	}
	if _u.mutation.ContactNumberCleared() {
		_spec.ClearField(doctor.FieldContactNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(doctor.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(doctor.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Availability(); ok {
		_spec.SetField(doctor.FieldAvailability, field.TypeString, value)
	}
	if _u.mutation.AvailabilityCleared() {
		_spec.ClearField(doctor.FieldAvailability, field.TypeString)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(doctor.FieldSchedule, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchedule(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, doctor.FieldSchedule, value)
		})
	}
	if _u.mutation.ScheduleCleared() {
		_spec.ClearField(doctor.FieldSchedule, field.TypeJSON)
	}
	_node = &Doctor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
