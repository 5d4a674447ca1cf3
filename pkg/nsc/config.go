package nsc

import (
	"fmt"
)

type NatsAccount struct {
	UserName string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	NKey     string `json:"nkey" yaml:"nkey"`
	Seed     string `json:"seed" yaml:"seed"`
}

type NatsConfig struct {
	Endpoint           string                  `json:"endpoint" yaml:"endpoint"`
	Account            map[string]*NatsAccount `json:"account" yaml:"account"`
	DefaultAccountName string                  `json:"defaultAccountName" yaml:"defaultAccountName"`
	ClickStreamName    string                  `json:"clickStreamName" yaml:"clickStreamName"`
	SubjectName        string                  `json:"subjectName" yaml:"subjectName"`
}

// Enabled 是否开启点击流上报，不配置endpoint则整体关闭
func (n *NatsConfig) Enabled() bool {
	return n != nil && n.Endpoint != ""
}

func (n *NatsConfig) Validate() error {
	if len(n.Account) == 0 {
		return fmt.Errorf("尚未定义账号")
	}
	if len(n.ClickStreamName) == 0 {
		return fmt.Errorf("尚未定义点击流stream")
	}
	if len(n.SubjectName) == 0 {
		return fmt.Errorf("尚未定义主题")
	}
	return nil
}

func NewDefaultNatsConfig() *NatsConfig {
	return &NatsConfig{
		Endpoint:           "",
		DefaultAccountName: "",
		Account:            make(map[string]*NatsAccount),
		ClickStreamName:    "NAVSITE_CLICKS",
		SubjectName:        "navsite.clicks",
	}
}

func (n *NatsConfig) GetDefaultAccount() (*NatsAccount, error) {
	if n.DefaultAccountName == "" {
		return nil, fmt.Errorf("没有定义默认账号")
	}
	if a, ok := n.Account[n.DefaultAccountName]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("无法找到 %s 账号定义", n.DefaultAccountName)
}
