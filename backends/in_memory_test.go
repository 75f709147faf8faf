package backends

import "testing"

func TestInMemoryBackend_GetAndSetKey(t *testing.T) {
	backend := &InMemoryBackend{}

	var config interface{}

	if err := backend.Init(config); err != nil {
		t.Fatal("Error raised on init: ", err)
	}

	type aStruct struct {
		Thing string
	}

	saveVal := aStruct{Thing: "Test"}
	keyName := "test-key"

	sErr := backend.SetKey(keyName, saveVal)
	if sErr != nil {
		t.Error("Error raised on set key: ", sErr)
	}

	target := aStruct{}
	vErr := backend.GetKey(keyName, &target)

	if vErr != nil {
		t.Error("Error raised on get key: ", vErr)
	}

	if target.Thing != saveVal.Thing {
		t.Error("Expected 'Test' as key val, got: ", target.Thing)
	}
}

func TestInMemoryBackend_DeleteKey(t *testing.T) {
	backend := &InMemoryBackend{}
	backend.Init(nil)

	if err := backend.SetKey("gone", "value"); err != nil {
		t.Fatal("Error raised on set key: ", err)
	}

	if err := backend.DeleteKey("gone"); err != nil {
		t.Error("Error raised on delete: ", err)
	}

	var target string
	if err := backend.GetKey("gone", &target); err == nil {
		t.Error("Expected error fetching a deleted key")
	}

	if err := backend.DeleteKey("never-there"); err == nil {
		t.Error("Expected error deleting a missing key")
	}
}

func TestInMemoryBackend_GetAll(t *testing.T) {
	backend := &InMemoryBackend{}
	backend.Init(nil)

	backend.SetKey("a", "one")
	backend.SetKey("b", "two")

	all := backend.GetAll()
	if len(all) != 2 {
		t.Error("Expected 2 values, got: ", len(all))
	}
}

func TestInMemoryBackend_SetBeforeInit(t *testing.T) {
	backend := &InMemoryBackend{}

	if err := backend.SetKey("k", "v"); err == nil {
		t.Error("Expected error setting a key on an uninitialised store")
	}
}
