package nsc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"navsite-web/pkg/models"
	"navsite-web/pkg/util"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/nats-io/nkeys"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var (
	singleton *ClickPublisher
	once      sync.Once
)

// ClickPublisher 点击流事件发布端，尽力而为，失败只记日志不影响跳转
type ClickPublisher struct {
	clientName string
	cfg        *NatsConfig
	nc         *nats.Conn
	mutex      sync.RWMutex
}

func InitNats(clientName string, config *NatsConfig) error {
	zap.S().Info("***初始化NATS点击流")
	var hasError error
	once.Do(func() {
		client := &ClickPublisher{
			clientName: clientName,
			cfg:        config,
			nc:         nil,
		}
		defaultAccount, err := config.GetDefaultAccount()
		if err != nil {
			hasError = err
			return
		}
		if err := client.Connect(defaultAccount); err != nil {
			hasError = err
			return
		}
		if err := client.clickStreamMustReady(); err != nil {
			hasError = err
			return
		}
		singleton = client
	})
	return hasError
}

func (p *ClickPublisher) Connect(account *NatsAccount) error {
	if p.nc != nil {
		return nil
	}
	opt := nats.GetDefaultOptions()
	opt.Name = fmt.Sprintf("%s %s", util.GetVersion().AppName, util.GetVersion().Version)
	opt.User = account.UserName
	opt.Password = account.Password
	opt.Nkey = account.NKey
	opt.Url = p.cfg.Endpoint
	opt.NoCallbacksAfterClientClose = true
	opt.ReconnectWait = 2 * time.Second //重试等待2s
	opt.MaxReconnect = -1               //永远重试
	opt.AllowReconnect = true
	opt.ReconnectJitter = 500 * time.Millisecond
	opt.DisconnectedErrCB = func(conn *nats.Conn, err error) {
		zap.S().Debugf("*** 断开连接...%s ***", err.Error())
	}
	opt.ReconnectedCB = func(conn *nats.Conn) {
		zap.S().Debugf("*** 已重连 ***")
	}
	opt.ConnectedCB = func(conn *nats.Conn) {
		zap.S().Debugf("*** NATS 已连接 ***")
	}

	opt.SignatureCB = func(b []byte) ([]byte, error) {
		sk, err := nkeys.FromSeed(util.StringToBytes(account.Seed))
		if err != nil {
			return nil, err
		}
		return sk.Sign(b)
	}

	nc, err := opt.Connect()
	if err != nil {
		return err
	}
	nc.SetErrorHandler(func(conn *nats.Conn, sub *nats.Subscription, natsErr error) {
		zap.S().Errorf("Nats 捕获错误: %v", natsErr)
	})
	p.nc = nc
	return nil
}

// 确认点击流stream存在，如果存在，绑定的主题需要追加
func (p *ClickPublisher) clickStreamMustReady() error {
	js, err := jetstream.New(p.nc)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	stream, err := js.Stream(ctx, p.cfg.ClickStreamName)
	zap.S().Infof("*** check stream %s. ***", p.cfg.ClickStreamName)
	if err != nil && !errors.Is(err, jetstream.ErrStreamNotFound) {
		return err
	}
	var subjects = []string{p.cfg.SubjectName}
	if err == nil {
		si, err := stream.Info(ctx)
		if err != nil {
			return err
		}
		subjects = lo.Uniq(append(subjects, si.Config.Subjects...))
	}
	zap.S().Infof("*** make sure stream %s and subject ready. ***", p.cfg.ClickStreamName)
	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     p.cfg.ClickStreamName,
		Subjects: subjects,
	})
	return err
}

// PublishClick 发布一条点击事件
func (p *ClickPublisher) PublishClick(event *models.ClickEvent) error {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	if p.nc == nil {
		return errors.New("nats未连接")
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.nc.Publish(p.cfg.SubjectName, payload)
}

func (p *ClickPublisher) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
		p.nc.Close()
		zap.S().Debugf("*** NATS 已经关闭 ***")
	}
}

// GetClickPublisher 取单例，未初始化时返回nil（点击流是可选功能）
func GetClickPublisher() *ClickPublisher {
	return singleton
}
