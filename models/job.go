package models

type JobHealth struct {
	OK             bool `json:"ok"`
	RankLocked     bool `json:"rankLocked"`
	VolumeLocked   bool `json:"volumeLocked"`
	AnalysisLocked bool `json:"analysisLocked"`
}

type RunJobResponse struct {
	OK  bool `json:"ok"`
	PID int  `json:"pid"`
}
