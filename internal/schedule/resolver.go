package schedule

import "schedule-snap/backend/internal/model"

// Resolution 某一时刻的解析结果，Current/Next 为 nil 表示没有
type Resolution struct {
	Current *model.ClassPeriod
	Next    *model.ClassPeriod
}

// Resolve 计算 now 时刻的当前课与下一节课
//
// 按给定顺序扫描（不排序）：
//   - 第一个满足 start <= now <= end 的课时为 Current，Next 取列表中紧随其后的一项
//   - 尚未命中 Current 时，第一个 start > now 的课时记为 Next 候选，继续扫描
//
// 相邻课时共享边界分钟时，排在前面的课时胜出。
// 纯函数：不持有状态，可重入。
func Resolve(periods []model.ClassPeriod, now model.TimeOfDay) Resolution {
	var res Resolution
	for i := range periods {
		p := periods[i]
		if p.Contains(now) {
			res.Current = &p
			res.Next = nil
			if i+1 < len(periods) {
				next := periods[i+1]
				res.Next = &next
			}
			return res
		}
		if now < p.Start && res.Next == nil {
			res.Next = &p
		}
	}
	return res
}
