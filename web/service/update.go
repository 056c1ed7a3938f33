package service

// diffField adds column=next to changes when next is supplied and differs
// from the stored value. Partial updates across all entities share this one
// policy: present and changed means written, everything else is left alone.
func diffField(changes map[string]any, column string, current string, next *string) {
	if next != nil && *next != current {
		changes[column] = *next
	}
}

// diffBoolField is the bool counterpart of diffField.
func diffBoolField(changes map[string]any, column string, current bool, next *bool) {
	if next != nil && *next != current {
		changes[column] = *next
	}
}
