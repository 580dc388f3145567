package gateway

import (
	"reflect"
	"testing"
)

func TestParseCredentialList(t *testing.T) {
	t.Parallel()

	got := ParseCredentialList("  a@b ,  ,c@d")
	want := []string{"a@b", "c@d"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseCredentialList = %v, want %v", got, want)
	}

	if got := ParseCredentialList(""); got != nil {
		t.Fatalf("ParseCredentialList(\"\") = %v, want nil", got)
	}
	if got := ParseCredentialList(" , ,"); got != nil {
		t.Fatalf("ParseCredentialList(blanks) = %v, want nil", got)
	}
}

func TestCredentialStoreClassify(t *testing.T) {
	t.Parallel()

	store := NewCredentialStore([]string{"ro-key", "shared"}, []string{"rw-key", "shared"})

	role, ok := store.Classify("rw-key")
	if !ok || role != RoleReadWrite {
		t.Fatalf("Classify(rw-key) = %v, %v; want RoleReadWrite", role, ok)
	}

	role, ok = store.Classify("ro-key")
	if !ok || role != RoleReadOnly {
		t.Fatalf("Classify(ro-key) = %v, %v; want RoleReadOnly", role, ok)
	}

	// A token configured in both sets resolves to the higher-capability role.
	role, ok = store.Classify("shared")
	if !ok || role != RoleReadWrite {
		t.Fatalf("Classify(shared) = %v, %v; want RoleReadWrite", role, ok)
	}

	if _, ok := store.Classify("unknown"); ok {
		t.Fatal("Classify(unknown) succeeded, want failure")
	}
	if _, ok := store.Classify(""); ok {
		t.Fatal("Classify(\"\") succeeded, want failure")
	}
}

func TestCredentialStoreEmpty(t *testing.T) {
	t.Parallel()

	if !NewCredentialStore(nil, nil).Empty() {
		t.Fatal("store with no credentials should be empty")
	}
	if NewCredentialStore([]string{"k"}, nil).Empty() {
		t.Fatal("store with a read-only credential should not be empty")
	}
	// Whitespace-only entries are dropped at load time.
	if !NewCredentialStore([]string{"  ", ""}, nil).Empty() {
		t.Fatal("store with only blank entries should be empty")
	}
}

func TestCredentialStoreCounts(t *testing.T) {
	t.Parallel()

	store := NewCredentialStore([]string{"a", "b", "a"}, []string{"c"})
	ro, rw := store.Counts()
	if ro != 2 || rw != 1 {
		t.Fatalf("Counts = %d, %d; want 2, 1", ro, rw)
	}
}

func TestRoleString(t *testing.T) {
	t.Parallel()

	if got := RoleReadOnly.String(); got != "read_only" {
		t.Fatalf("RoleReadOnly.String() = %q", got)
	}
	if got := RoleReadWrite.String(); got != "read_write" {
		t.Fatalf("RoleReadWrite.String() = %q", got)
	}
	if got := Role(0).String(); got != "none" {
		t.Fatalf("Role(0).String() = %q", got)
	}
	if RoleReadOnly.CanWrite() {
		t.Fatal("RoleReadOnly.CanWrite() = true")
	}
	if !RoleReadWrite.CanWrite() {
		t.Fatal("RoleReadWrite.CanWrite() = false")
	}
}
