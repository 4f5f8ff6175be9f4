package service

import "time"

// ── 周期排课生成器 ──────────────────────────────────────────
//
// 报名排课唯一的"算法"部分，抽成纯函数以便脱离数据库单测。
// 周期固定 7 天，不跳过节假日，不支持自定义间隔。
// ─────────────────────────────────────────────────────────────

// cadenceDays 相邻两节课堂开始时间的固定间隔（天）
const cadenceDays = 7

// lessonSlot 一节课堂的起止时间
type lessonSlot struct {
	Start time.Time
	End   time.Time
}

// generateWeeklySlots 以 anchor 为首堂开始时间，按 7 天间隔生成 count 节课堂。
// 日期加法使用 AddDate（日历日加法），跨夏令时调整仍保持墙钟时刻不变。
// count 非正时不生成任何课堂。
func generateWeeklySlots(anchor time.Time, count, durationMinutes int) []lessonSlot {
	if count <= 0 {
		return nil
	}
	slots := make([]lessonSlot, 0, count)
	duration := time.Duration(durationMinutes) * time.Minute
	for i := 0; i < count; i++ {
		start := anchor.AddDate(0, 0, cadenceDays*i)
		slots = append(slots, lessonSlot{
			Start: start,
			End:   start.Add(duration),
		})
	}
	return slots
}

// anchor 解析支持的时刻格式（原样墙钟时间，不做时区换算）
var anchorTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// parseLocalAnchor 将 startDate + startTime 组合为本地墙钟时间
func parseLocalAnchor(startDate, startTime string) (time.Time, error) {
	combined := startDate + "T" + startTime
	var firstErr error
	for _, layout := range anchorTimeLayouts {
		t, err := time.ParseInLocation(layout, combined, time.Local)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
