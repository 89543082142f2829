package schedule

import (
	"testing"

	"schedule-snap/backend/internal/model"
)

// ── 测试辅助 ──

func tod(t *testing.T, s string) model.TimeOfDay {
	t.Helper()
	v, err := ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q) 失败: %v", s, err)
	}
	return v
}

func threePeriods(t *testing.T) []model.ClassPeriod {
	return []model.ClassPeriod{
		{ID: "P1", Start: tod(t, "08:00"), End: tod(t, "08:40"), Subject: "Algebra"},
		{ID: "P2", Start: tod(t, "08:40"), End: tod(t, "09:20"), Subject: "Chemistry"},
		{ID: "P3", Start: tod(t, "09:20"), End: tod(t, "10:00"), Subject: "Lunch"},
	}
}

func idOf(p *model.ClassPeriod) string {
	if p == nil {
		return "<none>"
	}
	return p.ID
}

// ── Resolve 测试 ──

func TestResolve_ThreePeriodScenario(t *testing.T) {
	periods := threePeriods(t)

	cases := []struct {
		now         string
		wantCurrent string
		wantNext    string
	}{
		{"08:39", "P1", "P2"},
		{"08:40", "P1", "P2"}, // 边界分钟归前一节
		{"08:41", "P2", "P3"},
		{"07:00", "<none>", "P1"},
		{"10:00", "P3", "<none>"},
		{"10:01", "<none>", "<none>"},
	}

	for _, tc := range cases {
		res := Resolve(periods, tod(t, tc.now))
		if idOf(res.Current) != tc.wantCurrent {
			t.Errorf("now=%s 期望 current=%s，实际=%s", tc.now, tc.wantCurrent, idOf(res.Current))
		}
		if idOf(res.Next) != tc.wantNext {
			t.Errorf("now=%s 期望 next=%s，实际=%s", tc.now, tc.wantNext, idOf(res.Next))
		}
	}
}

func TestResolve_EmptyList(t *testing.T) {
	for _, now := range []string{"00:00", "08:40", "23:59"} {
		res := Resolve(nil, tod(t, now))
		if res.Current != nil || res.Next != nil {
			t.Errorf("空课表 now=%s 应返回 (none, none)，实际=(%s, %s)", now, idOf(res.Current), idOf(res.Next))
		}
	}
}

func TestResolve_EveryMinuteInsidePeriod(t *testing.T) {
	periods := threePeriods(t)
	p2 := periods[1]

	// 严格位于 P2 内部的每一分钟都应命中 P2
	for m := p2.Start + 1; m < p2.End; m++ {
		res := Resolve(periods, m)
		if idOf(res.Current) != "P2" {
			t.Fatalf("now=%s 期望 current=P2，实际=%s", m, idOf(res.Current))
		}
		if idOf(res.Next) != "P3" {
			t.Fatalf("now=%s 期望 next=P3，实际=%s", m, idOf(res.Next))
		}
	}
}

func TestResolve_GapBetweenPeriods(t *testing.T) {
	periods := []model.ClassPeriod{
		{ID: "1", Start: tod(t, "07:50"), End: tod(t, "08:00")},
		{ID: "2", Start: tod(t, "08:03"), End: tod(t, "08:43")},
	}

	res := Resolve(periods, tod(t, "08:01"))
	if res.Current != nil {
		t.Errorf("课间不应有当前课，实际=%s", idOf(res.Current))
	}
	if idOf(res.Next) != "2" {
		t.Errorf("期望 next=2，实际=%s", idOf(res.Next))
	}
}

func TestResolve_NextIsPositionalForOverlaps(t *testing.T) {
	// 两个午餐批次与体育课重叠：next 取列表后继，而非最早开始的课时
	periods := []model.ClassPeriod{
		{ID: "PE", Start: tod(t, "11:33"), End: tod(t, "12:13")},
		{ID: "LunchA", Start: tod(t, "11:33"), End: tod(t, "12:00")},
		{ID: "LunchB", Start: tod(t, "12:13"), End: tod(t, "12:42")},
	}

	res := Resolve(periods, tod(t, "11:40"))
	if idOf(res.Current) != "PE" {
		t.Errorf("期望 current=PE，实际=%s", idOf(res.Current))
	}
	if idOf(res.Next) != "LunchA" {
		t.Errorf("期望 next=LunchA（列表后继），实际=%s", idOf(res.Next))
	}

	res = Resolve(periods, tod(t, "12:13"))
	if idOf(res.Current) != "PE" {
		t.Errorf("12:13 边界期望 current=PE，实际=%s", idOf(res.Current))
	}
}

func TestResolve_OutOfOrderInputIsNotSorted(t *testing.T) {
	periods := []model.ClassPeriod{
		{ID: "late", Start: tod(t, "10:00"), End: tod(t, "11:00")},
		{ID: "early", Start: tod(t, "08:00"), End: tod(t, "09:00")},
	}

	// 两者都在未来时，按扫描顺序记录第一个候选
	res := Resolve(periods, tod(t, "07:00"))
	if idOf(res.Next) != "late" {
		t.Errorf("期望 next=late（首个候选），实际=%s", idOf(res.Next))
	}

	// 命中 early 时，next 取其列表后继（不存在）
	res = Resolve(periods, tod(t, "08:30"))
	if idOf(res.Current) != "early" || res.Next != nil {
		t.Errorf("期望 (early, none)，实际=(%s, %s)", idOf(res.Current), idOf(res.Next))
	}
}

func TestResolve_Idempotent(t *testing.T) {
	periods := threePeriods(t)
	now := tod(t, "08:40")

	a := Resolve(periods, now)
	b := Resolve(periods, now)
	if idOf(a.Current) != idOf(b.Current) || idOf(a.Next) != idOf(b.Next) {
		t.Errorf("相同输入结果不一致: (%s,%s) vs (%s,%s)",
			idOf(a.Current), idOf(a.Next), idOf(b.Current), idOf(b.Next))
	}
}

func TestResolve_DoesNotAliasInput(t *testing.T) {
	periods := threePeriods(t)
	res := Resolve(periods, tod(t, "08:10"))
	res.Current.Subject = "changed"

	if periods[0].Subject != "Algebra" {
		t.Error("修改结果不应影响输入切片")
	}
}

func TestResolve_DefaultTableMonday(t *testing.T) {
	table, err := DefaultWeekTable()
	if err != nil {
		t.Fatalf("DefaultWeekTable 失败: %v", err)
	}
	monday, _ := table.Day(model.Monday)

	res := Resolve(monday, tod(t, "08:50"))
	if res.Current == nil || res.Current.Subject != "Algebra II 10 Advanced" {
		t.Errorf("期望当前课为 Algebra II，实际=%+v", res.Current)
	}
	if res.Next == nil || res.Next.Subject != "Chemistry 10 Advanced" {
		t.Errorf("期望下一节为 Chemistry，实际=%+v", res.Next)
	}

	res = Resolve(monday, tod(t, "14:47"))
	if res.Current != nil || res.Next != nil {
		t.Error("放学后应返回 (none, none)")
	}
}
