// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/petscare/petscare_backend/internal/repo/appointment"
	"github.com/petscare/petscare_backend/internal/repo/predicate"
)

// AppointmentUpdate is the builder for updating Appointment entities.
type AppointmentUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdate) Where(ps ...predicate.Appointment) *AppointmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdate) SetUpdatedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *AppointmentUpdate) SetOwnerID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableOwnerID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetPetID sets the "pet_id" field.
func (_u *AppointmentUpdate) SetPetID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetPetID(v)
	return _u
}

// SetNillablePetID sets the "pet_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePetID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetPetID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AppointmentUpdate) SetDoctorID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDoctorID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetAppointmentDate sets the "appointment_date" field.
func (_u *AppointmentUpdate) SetAppointmentDate(v time.Time) *AppointmentUpdate {
	_u.mutation.SetAppointmentDate(v)
	return _u
}

// SetNillableAppointmentDate sets the "appointment_date" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableAppointmentDate(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetAppointmentDate(*v)
	}
	return _u
}

// SetQuery sets the "query" field.
func (_u *AppointmentUpdate) SetQuery(v string) *AppointmentUpdate {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableQuery(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// ClearQuery clears the value of the "query" field.
func (_u *AppointmentUpdate) ClearQuery() *AppointmentUpdate {
	_u.mutation.ClearQuery()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdate) SetStatus(v appointment.Status) *AppointmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStatus(v *appointment.Status) *AppointmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActedBy sets the "acted_by" field.
func (_u *AppointmentUpdate) SetActedBy(v string) *AppointmentUpdate {
	_u.mutation.SetActedBy(v)
	return _u
}

// SetNillableActedBy sets the "acted_by" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableActedBy(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetActedBy(*v)
	}
	return _u
}

// ClearActedBy clears the value of the "acted_by" field.
func (_u *AppointmentUpdate) ClearActedBy() *AppointmentUpdate {
	_u.mutation.ClearActedBy()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *AppointmentUpdate) SetRespondedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableRespondedAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *AppointmentUpdate) ClearRespondedAt() *AppointmentUpdate {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *AppointmentUpdate) SetRejectionReason(v string) *AppointmentUpdate {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableRejectionReason(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *AppointmentUpdate) ClearRejectionReason() *AppointmentUpdate {
	_u.mutation.ClearRejectionReason()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdate) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActedBy(); ok {
		if err := appointment.ActedByValidator(v); err != nil {
			return &ValidationError{Name: "acted_by", err: fmt.Errorf(`repo: validator failed for field "Appointment.acted_by": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(appointment.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PetID(); ok {
		_spec.SetField(appointment.FieldPetID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(appointment.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AppointmentDate(); ok {
		_spec.SetField(appointment.FieldAppointmentDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(appointment.FieldQuery, field.TypeString, value)
	}
	if _u.mutation.QueryCleared() {
		_spec.ClearField(appointment.FieldQuery, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActedBy(); ok {
		_spec.SetField(appointment.FieldActedBy, field.TypeString, value)
	}
	if _u.mutation.ActedByCleared() {
		_spec.ClearField(appointment.FieldActedBy, field.TypeString)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(appointment.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(appointment.FieldRespondedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(appointment.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(appointment.FieldRejectionReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentUpdateOne is the builder for updating a single Appointment entity.
type AppointmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdateOne) SetUpdatedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *AppointmentUpdateOne) SetOwnerID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableOwnerID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetPetID sets the "pet_id" field.
func (_u *AppointmentUpdateOne) SetPetID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetPetID(v)
	return _u
}

// SetNillablePetID sets the "pet_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePetID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPetID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AppointmentUpdateOne) SetDoctorID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDoctorID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetAppointmentDate sets the "appointment_date" field.
func (_u *AppointmentUpdateOne) SetAppointmentDate(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetAppointmentDate(v)
	return _u
}

// SetNillableAppointmentDate sets the "appointment_date" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableAppointmentDate(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetAppointmentDate(*v)
	}
	return _u
}

// SetQuery sets the "query" field.
func (_u *AppointmentUpdateOne) SetQuery(v string) *AppointmentUpdateOne {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableQuery(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// ClearQuery clears the value of the "query" field.
func (_u *AppointmentUpdateOne) ClearQuery() *AppointmentUpdateOne {
	_u.mutation.ClearQuery()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdateOne) SetStatus(v appointment.Status) *AppointmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStatus(v *appointment.Status) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActedBy sets the "acted_by" field.
func (_u *AppointmentUpdateOne) SetActedBy(v string) *AppointmentUpdateOne {
	_u.mutation.SetActedBy(v)
	return _u
}

// SetNillableActedBy sets the "acted_by" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableActedBy(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetActedBy(*v)
	}
	return _u
}

// ClearActedBy clears the value of the "acted_by" field.
func (_u *AppointmentUpdateOne) ClearActedBy() *AppointmentUpdateOne {
	_u.mutation.ClearActedBy()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *AppointmentUpdateOne) SetRespondedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableRespondedAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *AppointmentUpdateOne) ClearRespondedAt() *AppointmentUpdateOne {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *AppointmentUpdateOne) SetRejectionReason(v string) *AppointmentUpdateOne {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableRejectionReason(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *AppointmentUpdateOne) ClearRejectionReason() *AppointmentUpdateOne {
	_u.mutation.ClearRejectionReason()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdateOne) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdateOne) Where(ps ...predicate.Appointment) *AppointmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentUpdateOne) Select(field string, fields ...string) *AppointmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appointment entity.
func (_u *AppointmentUpdateOne) Save(ctx context.Context) (*Appointment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdateOne) SaveX(ctx context.Context) *Appointment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActedBy(); ok {
		if err := appointment.ActedByValidator(v); err != nil {
			return &ValidationError{Name: "acted_by", err: fmt.Errorf(`repo: validator failed for field "Appointment.acted_by": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdateOne) sqlSave(ctx context.Context) (_node *Appointment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Appointment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointment.FieldID)
		for _, f := range fields {
			if !appointment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointment.FieldID {
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
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(appointment.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PetID(); ok {
		_spec.SetField(appointment.FieldPetID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(appointment.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AppointmentDate(); ok {
		_spec.SetField(appointment.FieldAppointmentDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(appointment.FieldQuery, field.TypeString, value)
	}
	if _u.mutation.QueryCleared() {
		_spec.ClearField(appointment.FieldQuery, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActedBy(); ok {
		_spec.SetField(appointment.FieldActedBy, field.TypeString, value)
	}
	if _u.mutation.ActedByCleared() {
		_spec.ClearField(appointment.FieldActedBy, field.TypeString)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(appointment.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(appointment.FieldRespondedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(appointment.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(appointment.FieldRejectionReason, field.TypeString)
	}
	_node = &Appointment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
