// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"slopewatch.io/slopewatch/ent/deliveryqueueentry"
	"slopewatch.io/slopewatch/ent/notification"
	"slopewatch.io/slopewatch/ent/schema"
	"slopewatch.io/slopewatch/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	deliveryqueueentryMixin := schema.DeliveryQueueEntry{}.Mixin()
	deliveryqueueentryMixinFields0 := deliveryqueueentryMixin[0].Fields()
	_ = deliveryqueueentryMixinFields0
	deliveryqueueentryFields := schema.DeliveryQueueEntry{}.Fields()
	_ = deliveryqueueentryFields
	// deliveryqueueentryDescCreatedAt is the schema descriptor for created_at field.
	deliveryqueueentryDescCreatedAt := deliveryqueueentryMixinFields0[0].Descriptor()
	// deliveryqueueentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	deliveryqueueentry.DefaultCreatedAt = deliveryqueueentryDescCreatedAt.Default.(func() time.Time)
	// deliveryqueueentryDescSent is the schema descriptor for sent field.
	deliveryqueueentryDescSent := deliveryqueueentryFields[1].Descriptor()
	// deliveryqueueentry.DefaultSent holds the default value on creation for the sent field.
	deliveryqueueentry.DefaultSent = deliveryqueueentryDescSent.Default.(bool)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = func() func(string) error {
		validators := notificationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescBody is the schema descriptor for body field.
	notificationDescBody := notificationFields[3].Descriptor()
	// notification.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	notification.BodyValidator = notificationDescBody.Validators[0].(func(string) error)
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[5].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescActive is the schema descriptor for active field.
	userDescActive := userFields[5].Descriptor()
	// user.DefaultActive holds the default value on creation for the active field.
	user.DefaultActive = userDescActive.Default.(bool)
}
