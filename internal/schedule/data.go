package schedule

import "schedule-snap/backend/internal/model"

// defaultRows 内置演示课表（纽约某高中十年级，一周五天，每天 12 节）
//
// 第 7、8 节时间重叠（体育课与新生/高年级午餐同时开始），
// 这是原始课表的真实情况，解析器按列表顺序处理。
var defaultRows = map[model.Weekday][]Row{
	model.Monday: {
		{ID: "1", Start: "07:50", End: "08:00", Subject: "Homeroom", Teacher: "Florez, Karla", Room: "302"},
		{ID: "2", Start: "08:03", End: "08:43", Subject: "British Lit ELA 10 Advanced", Teacher: "Camarda, Antoinette", Room: "202"},
		{ID: "3", Start: "08:45", End: "09:25", Subject: "Algebra II 10 Advanced", Teacher: "Rubin De Celis, Miguel", Room: "304"},
		{ID: "4", Start: "09:27", End: "10:07", Subject: "Chemistry 10 Advanced", Teacher: "Reyes, Jeremy", Room: "301"},
		{ID: "5", Start: "10:09", End: "10:55", Subject: "Global Studies II: The Modern Era Advanced", Teacher: "Follenius, David", Room: "204"},
		{ID: "6", Start: "10:57", End: "11:31", Subject: "Mass", Teacher: "Chapel", Room: "Chapel"},
		{ID: "7", Start: "11:33", End: "12:13", Subject: "Phys Ed 10 Advanced", Teacher: "Tucker III, Menzo", Room: "Gym"},
		{ID: "8", Start: "11:33", End: "12:00", Subject: "Lunch - Freshman & Senior", Teacher: "Cafeteria", Room: "Cafeteria"},
		{ID: "9", Start: "12:13", End: "12:42", Subject: "Lunch - Sophomore & Junior", Teacher: "Cafeteria", Room: "Cafeteria"},
		{ID: "10", Start: "12:42", End: "13:22", Subject: "Spanish 10 Intermediate Advanced", Teacher: "Florez, Karla", Room: "201"},
		{ID: "11", Start: "13:24", End: "14:04", Subject: "Computer Science 10 Advanced", Teacher: "Rooney, Robert", Room: "203"},
		{ID: "12", Start: "14:06", End: "14:46", Subject: "Computer Science 10 Advanced", Teacher: "Rooney, Robert", Room: "203"},
	},
	model.Tuesday: {
		{ID: "1", Start: "07:50", End: "08:00", Subject: "Homeroom", Teacher: "Florez, Karla", Room: "302"},
		{ID: "2", Start: "08:03", End: "08:43", Subject: "Mass", Teacher: "Chapel", Room: "Chapel"},
		{ID: "3", Start: "08:45", End: "09:25", Subject: "Intro to Sacred Script 10 Advanced", Teacher: "Neier, Steven", Room: "305"},
		{ID: "4", Start: "09:27", End: "10:07", Subject: "Intro to Sacred Script 10 Advanced", Teacher: "Neier, Steven", Room: "305"},
		{ID: "5", Start: "10:09", End: "10:55", Subject: "Algebra II 10 Advanced", Teacher: "Rubin De Celis, Miguel", Room: "304"},
		{ID: "6", Start: "10:57", End: "11:31", Subject: "Spanish 10 Intermediate Advanced", Teacher: "Florez, Karla", Room: "201"},
		{ID: "7", Start: "11:33", End: "12:13", Subject: "Chemistry 10 Advanced", Teacher: "Reyes, Jeremy", Room: "301"},
		{ID: "8", Start: "11:33", End: "12:00", Subject: "Lunch - Freshman & Senior", Teacher: "Cafeteria", Room: "Cafeteria"},
		{ID: "9", Start: "12:13", End: "12:42", Subject: "Lunch - Sophomore & Junior", Teacher: "Cafeteria", Room: "Cafeteria"},
		{ID: "10", Start: "12:42", End: "13:22", Subject: "British Lit ELA 10 Advanced", Teacher: "Camarda, Antoinette", Room: "202"},
		{ID: "11", Start: "13:24", End: "14:04", Subject: "Spanish 10 Intermediate Advanced", Teacher: "Florez, Karla", Room: "201"},
		{ID: "12", Start: "14:06", End: "14:46", Subject: "Global Studies II: The Modern Era Advanced", Teacher: "Follenius, David", Room: "204"},
	},
	model.Wednesday: {
		{ID: "1", Start: "07:50", End: "08:00", Subject: "Homeroom", Teacher: "Florez, Karla", Room: "302"},
		{ID: "2", Start: "08:03", End: "08:43", Subject: "Intro to Sacred Script 10 Advanced", Teacher: "Neier, Steven", Room: "305"},
		{ID: "3", Start: "08:45", End: "09:25", Subject: "Intro to Sacred Script 10 Advanced", Teacher: "Neier, Steven", Room: "305"},
		{ID: "4", Start: "09:27", End: "10:07", Subject: "Chemistry 10 Advanced", Teacher: "Reyes, Jeremy", Room: "301"},
		{ID: "5", Start: "10:09", End: "10:55", Subject: "Chemistry 10 Advanced", Teacher: "Reyes, Jeremy", Room: "301"},
		{ID: "6", Start: "10:57", End: "11:31", Subject: "Mass", Teacher: "Chapel", Room: "Chapel"},
		{ID: "7", Start: "11:33", End: "12:13", Subject: "Global Studies II: The Modern Era Advanced", Teacher: "Follenius, David", Room: "204"},
		{ID: "8", Start: "11:33", End: "12:00", Subject: "Lunch - Freshman & Senior", Teacher: "Cafeteria", Room: "Cafeteria"},
		{ID: "9", Start: "12:13", End: "12:42", Subject: "Lunch - Sophomore & Junior", Teacher: "Cafeteria", Room: "Cafeteria"},
		{ID: "10", Start: "12:42", End: "13:22", Subject: "Algebra II 10 Advanced", Teacher: "Rubin De Celis, Miguel", Room: "304"},
		{ID: "11", Start: "13:24", End: "14:04", Subject: "British Lit ELA 10 Advanced", Teacher: "Camarda, Antoinette", Room: "202"},
		{ID: "12", Start: "14:06", End: "14:46", Subject: "Early Dismissal - Professional Development", Teacher: "N/A", Room: "N/A"},
	},
	model.Thursday: {
		{ID: "1", Start: "07:50", End: "08:00", Subject: "Homeroom", Teacher: "Florez, Karla", Room: "302"},
		{ID: "2", Start: "08:03", End: "08:43", Subject: "Mass", Teacher: "Chapel", Room: "Chapel"},
		{ID: "3", Start: "08:45", End: "09:25", Subject: "Phys Ed 10 Advanced", Teacher: "Tucker III, Menzo", Room: "Gym"},
		{ID: "4", Start: "09:27", End: "10:07", Subject: "Global Studies II: The Modern Era Advanced", Teacher: "Follenius, David", Room: "204"},
		{ID: "5", Start: "10:09", End: "10:55", Subject: "British Lit ELA 10 Advanced", Teacher: "Camarda, Antoinette", Room: "202"},
		{ID: "6", Start: "10:57", End: "11:31", Subject: "Spanish 10 Intermediate Advanced", Teacher: "Florez, Karla", Room: "201"},
		{ID: "7", Start: "11:33", End: "12:13", Subject: "Chemistry 10 Advanced", Teacher: "Reyes, Jeremy", Room: "301"},
		{ID: "8", Start: "11:33", End: "12:00", Subject: "Lunch - Freshman & Senior", Teacher: "Cafeteria", Room: "Cafeteria"},
		{ID: "9", Start: "12:13", End: "12:42", Subject: "Lunch - Sophomore & Junior", Teacher: "Cafeteria", Room: "Cafeteria"},
		{ID: "10", Start: "12:42", End: "13:22", Subject: "Algebra II 10 Advanced", Teacher: "Rubin De Celis, Miguel", Room: "304"},
		{ID: "11", Start: "13:24", End: "14:04", Subject: "Computer Science 10 Advanced", Teacher: "Rooney, Robert", Room: "203"},
		{ID: "12", Start: "14:06", End: "14:46", Subject: "Holy Hour", Teacher: "Chapel", Room: "Chapel"},
	},
	model.Friday: {
		{ID: "1", Start: "07:50", End: "08:00", Subject: "Homeroom", Teacher: "Florez, Karla", Room: "302"},
		{ID: "2", Start: "08:03", End: "08:43", Subject: "Algebra II 10 Advanced", Teacher: "Rubin De Celis, Miguel", Room: "304"},
		{ID: "3", Start: "08:45", End: "09:25", Subject: "Chemistry 10 Advanced", Teacher: "Reyes, Jeremy", Room: "301"},
		{ID: "4", Start: "09:27", End: "10:07", Subject: "Guidance 10 Advanced", Teacher: "Nieves, Stacy", Room: "303"},
		{ID: "5", Start: "10:09", End: "10:55", Subject: "British Lit ELA 10 Advanced", Teacher: "Camarda, Antoinette", Room: "202"},
		{ID: "6", Start: "10:57", End: "11:31", Subject: "Mass", Teacher: "Chapel", Room: "Chapel"},
		{ID: "7", Start: "11:33", End: "12:13", Subject: "Phys Ed 10 Advanced", Teacher: "Tucker III, Menzo", Room: "Gym"},
		{ID: "8", Start: "11:33", End: "12:00", Subject: "Lunch - Freshman & Senior", Teacher: "Cafeteria", Room: "Cafeteria"},
		{ID: "9", Start: "12:13", End: "12:42", Subject: "Lunch - Sophomore & Junior", Teacher: "Cafeteria", Room: "Cafeteria"},
		{ID: "10", Start: "12:42", End: "13:22", Subject: "Spanish 10 Intermediate Advanced", Teacher: "Florez, Karla", Room: "201"},
		{ID: "11", Start: "13:24", End: "14:04", Subject: "Global Studies II: The Modern Era Advanced", Teacher: "Follenius, David", Room: "204"},
		{ID: "12", Start: "14:06", End: "14:46", Subject: "Computer Science 10 Advanced", Teacher: "Rooney, Robert", Room: "203"},
	},
}

// DefaultWeekTable 构造内置课表；字面量有误时返回错误，由启动流程终止进程
func DefaultWeekTable() (*WeekTable, error) {
	return NewWeekTable(defaultRows)
}
