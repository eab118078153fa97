package loads

import (
	"strconv"
	"sync"
	"testing"
)

func sampleCall() Call {
	return Call{
		Origin:           "Chicago, IL",
		Destination:      "Dallas, TX",
		PickupDatetime:   "2025-07-01T08:00",
		DeliveryDatetime: "2025-07-02T17:00",
		EquipmentType:    "Dry Van",
		LoadboardRate:    "1800",
		Notes:            "dock opens at 7",
		Weight:           "42000",
		CommodityType:    "paper",
		NumOfPieces:      "20",
		Miles:            "920",
		Dimensions:       "48x102",
		CarrierName:      "Acme Freight",
		CarrierPhone:     "+15551230000",
		CarrierMCNumber:  "123456",
		TypeOfCall:       TypeNewCall,
		ValidateCarrier:  "no",
	}
}

func TestTracker_NewCallRecordedOnce(t *testing.T) {
	tr := NewTracker()
	c := sampleCall()

	if !tr.RecordNewCall(c) {
		t.Fatalf("first submission should record")
	}
	if tr.RecordNewCall(c) {
		t.Fatalf("second submission should be a duplicate")
	}
	if tr.RecordNewCall(c) {
		t.Fatalf("duplicate rejection must be sticky")
	}
	if n, _ := tr.Counts(); n != 1 {
		t.Fatalf("expected 1 tracked new call, got %d", n)
	}
}

func TestTracker_AnyFieldDifferenceDefeatsDedup(t *testing.T) {
	tr := NewTracker()
	a := sampleCall()
	b := sampleCall()
	b.PickupDatetime = "2025-07-01T08:01"

	if !tr.RecordNewCall(a) || !tr.RecordNewCall(b) {
		t.Fatalf("calls differing in one field are distinct")
	}
	if n, _ := tr.Counts(); n != 2 {
		t.Fatalf("expected 2 tracked new calls, got %d", n)
	}
}

func TestTracker_VoicemailCapAtThree(t *testing.T) {
	tr := NewTracker()
	c := sampleCall()
	c.TypeOfCall = TypeVoicemailRetry

	for i := 1; i <= 3; i++ {
		if !tr.RecordVoicemailAttempt(c) {
			t.Fatalf("attempt %d should record", i)
		}
	}
	if tr.RecordVoicemailAttempt(c) {
		t.Fatalf("4th attempt should hit the cap")
	}
	if tr.RecordVoicemailAttempt(c) {
		t.Fatalf("cap is sticky, not a sliding window")
	}
	if _, n := tr.Counts(); n != 3 {
		t.Fatalf("expected 3 recorded attempts, got %d", n)
	}
}

func TestTracker_VoicemailCapIsPerPayload(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 4; i++ {
		c := sampleCall()
		c.TypeOfCall = TypeVoicemailRetry
		c.CarrierPhone = "+1555000000" + strconv.Itoa(i)
		if !tr.RecordVoicemailAttempt(c) {
			t.Fatalf("distinct payloads must not share the cap")
		}
	}
}

func TestTracker_ConcurrentIdenticalNewCalls(t *testing.T) {
	tr := NewTracker()
	c := sampleCall()

	const workers = 32
	var wg sync.WaitGroup
	recorded := make(chan bool, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			recorded <- tr.RecordNewCall(c)
		}()
	}
	wg.Wait()
	close(recorded)

	wins := 0
	for ok := range recorded {
		if ok {
			wins++
		}
	}
	if wins != 1 {
		t.Fatalf("exactly one concurrent submission may win, got %d", wins)
	}
	if n, _ := tr.Counts(); n != 1 {
		t.Fatalf("expected 1 tracked new call, got %d", n)
	}
}
